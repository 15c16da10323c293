package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/events"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/mailer"

	"gorm.io/gorm"
)

// Notifier membaca event bus surat dan mengirim notifikasi email.
type Notifier struct {
	db   *gorm.DB
	mail *mailer.Client
}

func New(db *gorm.DB, mail *mailer.Client) *Notifier {
	return &Notifier{db: db, mail: mail}
}

// StartConsumer memproses event sampai context dibatalkan. Pengiriman
// email jalan di goroutine sendiri agar bus tidak tersendat.
func (n *Notifier) StartConsumer(ctx context.Context) {
	log.Println("✅ Email Notifier Consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.SuratEventBus:
			go func(event events.SuratEvent) {
				if err := n.handle(event); err != nil {
					log.Printf("notifier: %v", err)
				}
			}(e)
		}
	}
}

func (n *Notifier) handle(e events.SuratEvent) error {
	switch e.Type {
	case events.DisposisiDibuat:
		if e.Disposisi == nil {
			return nil
		}
		return n.notifyDisposisi(e.Disposisi)
	default:
		// Event lain belum punya kanal notifikasi.
		return nil
	}
}

func (n *Notifier) notifyDisposisi(d *models.Disposisi) error {
	var penerima, pengirim models.User
	if err := n.db.First(&penerima, d.PenerimaID).Error; err != nil {
		return fmt.Errorf("load penerima disposisi %d: %w", d.ID, err)
	}
	if err := n.db.First(&pengirim, d.PengirimID).Error; err != nil {
		return fmt.Errorf("load pengirim disposisi %d: %w", d.ID, err)
	}

	var sm models.SuratMasuk
	if err := n.db.Preload("Document").First(&sm, d.SuratMasukID).Error; err != nil {
		return fmt.Errorf("load surat masuk %d: %w", d.SuratMasukID, err)
	}

	nomor, perihal := "", ""
	if sm.Document != nil {
		nomor = sm.Document.NomorSurat
		perihal = sm.Document.Perihal
	}

	return n.mail.SendDisposisiNotification(penerima.Email, nomor, perihal, pengirim.Username, d.Instruksi)
}
