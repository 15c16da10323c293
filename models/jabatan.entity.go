package models

// Level hierarki jabatan: 1 = pimpinan tertinggi, 5 = pelaksana.
const (
	LevelPimpinan  = 1
	LevelWakil     = 2
	LevelKabag     = 3
	LevelKasubag   = 4
	LevelPelaksana = 5
)

type Jabatan struct {
	ID            uint   `gorm:"primaryKey;autoIncrement:true" json:"id"`
	NamaJabatan   string `gorm:"type:varchar(150);not null" json:"nama_jabatan"`
	LevelHierarki int    `gorm:"not null;index" json:"level_hierarki"`
	KodeUK        string `gorm:"type:varchar(50);index;column:kode_uk" json:"kode_uk"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
}

func (Jabatan) TableName() string {
	return "jabatan"
}

// --- Helper Methods ---

// IsTerminal reports whether this jabatan sits at the bottom of the
// hierarchy. Level 5 may execute a disposisi but never re-route it.
func (j *Jabatan) IsTerminal() bool {
	return j.LevelHierarki >= LevelPelaksana
}

// CanRouteTo reports whether a disposisi may flow from this jabatan to
// the target. Routing goes downward or lateral only (target level >= own),
// and a terminal jabatan never routes.
func (j *Jabatan) CanRouteTo(target *Jabatan) bool {
	if j.IsTerminal() {
		return false
	}
	return target.LevelHierarki >= j.LevelHierarki
}

func IsValidLevelHierarki(level int) bool {
	return level >= LevelPimpinan && level <= LevelPelaksana
}
