package main

import (
	"flag"
	"log"

	"github.com/Ahadan1/SIPAS-Public-sub001/config"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"

	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "seed data referensi awal (jabatan, jenis naskah, klasifikasi)")
	flag.Parse()

	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.Jabatan{},
		&models.User{},
		&models.JenisNaskah{},
		&models.Klasifikasi{},
		&models.Document{},
		&models.SuratMasuk{},
		&models.SuratKeluar{},
		&models.Disposisi{},
		&models.Arsip{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")

	if *seed {
		if err := seedReferensi(db); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("✅ Seed completed")
	}
}

// seedReferensi mengisi data referensi awal. Idempoten: baris yang sudah
// ada dilewati berdasarkan kolom uniknya.
func seedReferensi(db *gorm.DB) error {
	jabatan := []models.Jabatan{
		{NamaJabatan: "Direktur", LevelHierarki: models.LevelPimpinan, KodeUK: "DIR", IsActive: true},
		{NamaJabatan: "Wakil Direktur", LevelHierarki: models.LevelWakil, KodeUK: "WADIR", IsActive: true},
		{NamaJabatan: "Kepala Bagian Umum", LevelHierarki: models.LevelKabag, KodeUK: "BAG-UMUM", IsActive: true},
		{NamaJabatan: "Kepala Subbagian Tata Usaha", LevelHierarki: models.LevelKasubag, KodeUK: "SUB-TU", IsActive: true},
		{NamaJabatan: "Pelaksana", LevelHierarki: models.LevelPelaksana, KodeUK: "PLK", IsActive: true},
	}
	for i := range jabatan {
		var existing models.Jabatan
		err := db.Where("nama_jabatan = ?", jabatan[i].NamaJabatan).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&jabatan[i]).Error; err != nil {
			return err
		}
	}

	jenisNaskah := []models.JenisNaskah{
		{Kode: "SK", Nama: "Surat Keputusan", IsActive: true},
		{Kode: "ND", Nama: "Nota Dinas", IsActive: true},
		{Kode: "UND", Nama: "Undangan", IsActive: true},
		{Kode: "SE", Nama: "Surat Edaran", IsActive: true},
		{Kode: "ST", Nama: "Surat Tugas", IsActive: true},
	}
	for i := range jenisNaskah {
		var existing models.JenisNaskah
		err := db.Where("kode = ?", jenisNaskah[i].Kode).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&jenisNaskah[i]).Error; err != nil {
			return err
		}
	}

	klasifikasi := []models.Klasifikasi{
		{Kode: "EKN", Nama: "Ekonomi dan Keuangan", IsActive: true},
		{Kode: "KPG", Nama: "Kepegawaian", IsActive: true},
		{Kode: "AKD", Nama: "Akademik", IsActive: true},
		{Kode: "UM", Nama: "Umum", IsActive: true},
	}
	for i := range klasifikasi {
		var existing models.Klasifikasi
		err := db.Where("kode = ?", klasifikasi[i].Kode).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&klasifikasi[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
