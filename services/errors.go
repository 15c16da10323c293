package services

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized: user not authenticated")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("resource not found")

	// ErrConflict dikembalikan saat generate nomor kehabisan retry karena
	// rebutan scope yang sama, atau saat mutasi ditolak karena data sudah
	// berubah di bawah tangan.
	ErrConflict = errors.New("conflict: operation lost a concurrent race")

	ErrAlreadyArchived = errors.New("surat already archived")
)

// InvalidTransitionError menolak aksi yang tidak terdaftar pada status
// surat saat ini. Pesan selalu menyebut status dan aksi yang dicoba.
type InvalidTransitionError struct {
	Status string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s while status is %q", e.Action, e.Status)
}

// HierarchyViolationError menolak disposisi yang melawan arah hierarki
// jabatan (penerima harus selevel atau di bawah pengirim; level terbawah
// tidak meneruskan).
type HierarchyViolationError struct {
	PengirimLevel int
	PenerimaLevel int
}

func (e *HierarchyViolationError) Error() string {
	return fmt.Sprintf("hierarchy violation: disposisi from level %d to level %d is not allowed",
		e.PengirimLevel, e.PenerimaLevel)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

// IsHierarchyViolation reports whether err is a HierarchyViolationError.
func IsHierarchyViolation(err error) bool {
	var e *HierarchyViolationError
	return errors.As(err, &e)
}
