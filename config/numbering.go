package config

import "os"

type NumberingConfig struct {
	OrgToken string
}

// LoadNumberingConfig membaca token organisasi yang dipakai pada setiap
// nomor surat. Token ini tetap untuk satu instalasi.
func LoadNumberingConfig() NumberingConfig {
	token := os.Getenv("NOMOR_ORG_TOKEN")
	if token == "" {
		token = "UN2.F13.DIR"
	}
	return NumberingConfig{OrgToken: token}
}
