package routes

import (
	"github.com/Ahadan1/SIPAS-Public-sub001/handlers"
	"github.com/Ahadan1/SIPAS-Public-sub001/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, db *gorm.DB, numbering *services.NumberingService) {
	masukSvc := services.NewSuratMasukService(db, numbering)
	keluarSvc := services.NewSuratKeluarService(db, numbering)
	disposisiSvc := services.NewDisposisiService(db)
	arsipSvc := services.NewArsipService(db)

	masukHandler := handlers.NewSuratMasukHandler(db, masukSvc)
	keluarHandler := handlers.NewSuratKeluarHandler(db, keluarSvc)
	disposisiHandler := handlers.NewDisposisiHandler(db, disposisiSvc)
	arsipHandler := handlers.NewArsipHandler(db, arsipSvc)
	referensiHandler := handlers.NewReferensiHandler(db)

	api := app.Group("/api")

	// Auth (publik)
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/refresh", handlers.RefreshAccessToken)
	api.Post("/auth/logout", handlers.Logout)
	api.Post("/auth/forgot-password", handlers.RequestPasswordReset)
	api.Post("/auth/reset-password", handlers.ResetPassword)

	// Semua endpoint di bawah butuh JWT.
	authed := api.Group("", middleware.RequireAuth())

	// Profil
	authed.Get("/me", handlers.GetMyProfile)
	authed.Put("/me", handlers.UpdateMyProfile)

	// File lampiran
	authed.Post("/files", middleware.RequireTataUsaha(), handlers.UploadFileHandler)
	authed.Get("/files/url", handlers.GetFileURL)

	// Surat Masuk
	authed.Post("/surat-masuk", middleware.RequireTataUsaha(), masukHandler.CreateSuratMasuk)
	authed.Get("/surat-masuk", masukHandler.ListSuratMasuk)
	authed.Get("/surat-masuk/:id", masukHandler.GetSuratMasuk)
	authed.Patch("/surat-masuk/:id/read", masukHandler.MarkRead)
	authed.Patch("/surat-masuk/:id/unread", masukHandler.MarkUnread)

	// Disposisi (rantai per surat masuk)
	authed.Post("/surat-masuk/:id/disposisi", middleware.RequirePejabat(), disposisiHandler.CreateDisposisi)
	authed.Get("/surat-masuk/:id/disposisi", disposisiHandler.ListDisposisi)
	authed.Put("/disposisi/:id", middleware.RequirePejabat(), disposisiHandler.UpdateDisposisi)
	authed.Delete("/disposisi/:id", middleware.RequirePejabat(), disposisiHandler.DeleteDisposisi)

	// Surat Keluar
	authed.Post("/surat-keluar", middleware.RequireTataUsaha(), keluarHandler.CreateSuratKeluar)
	authed.Get("/surat-keluar", keluarHandler.ListSuratKeluar)
	authed.Get("/surat-keluar/:id", keluarHandler.GetSuratKeluar)
	authed.Patch("/surat-keluar/:id/kirim", middleware.RequireTataUsaha(), keluarHandler.KirimSuratKeluar)

	// Arsip
	authed.Post("/arsip", middleware.RequireTataUsaha(), arsipHandler.ArchiveSurat)
	authed.Get("/arsip", arsipHandler.ListArsip)
	authed.Delete("/arsip/:type/:id", middleware.RequireTataUsaha(), arsipHandler.UnarchiveSurat)

	// Referensi (dibaca semua user login, ditulis admin)
	authed.Get("/referensi/jabatan", referensiHandler.ListJabatan)
	authed.Get("/referensi/jenis-naskah", referensiHandler.ListJenisNaskah)
	authed.Get("/referensi/klasifikasi", referensiHandler.ListKlasifikasi)

	adminRef := authed.Group("/referensi", middleware.RequireAdmin())
	adminRef.Post("/jabatan", referensiHandler.CreateJabatan)
	adminRef.Put("/jabatan/:id", referensiHandler.UpdateJabatan)
	adminRef.Post("/jenis-naskah", referensiHandler.CreateJenisNaskah)
	adminRef.Put("/jenis-naskah/:id", referensiHandler.UpdateJenisNaskah)
	adminRef.Post("/klasifikasi", referensiHandler.CreateKlasifikasi)
	adminRef.Put("/klasifikasi/:id", referensiHandler.UpdateKlasifikasi)

	// ----- ADMIN USERS CRUD -----
	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.Post("/users", handlers.AdminCreateUser)
	admin.Get("/users", handlers.AdminListUsers) // ?page=&limit=&role=&jabatan_id=&q=
	admin.Get("/users/:id", handlers.AdminGetUserByID)
	admin.Put("/users/:id", handlers.AdminUpdateUser)
	admin.Delete("/users/:id", handlers.AdminDeleteUser)
}
