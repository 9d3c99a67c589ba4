package config

import "fmt"

const (
	// DefaultTombstoneKey keys the tombstone hash when TOMBSTONE_KEY is unset.
	DefaultTombstoneKey = "prysme-tombstone-v1"
	// maxTombstoneKeyLen is the BLAKE2b key size limit.
	maxTombstoneKeyLen = 64
	// Tombstones replace customers.cpf_cnpj, a varchar(20).
	minTombstoneLength = 8
	maxTombstoneLength = 20
)

// SecurityConfig holds password hashing and soft-delete settings.
type SecurityConfig struct {
	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int
	// TombstoneKey keys the hash that derives tombstones from entity ids.
	TombstoneKey string
	// TombstoneLength is the number of characters of each tombstone.
	TombstoneLength int
}

// LoadSecurityConfigFromEnv loads security configuration from environment variables.
func LoadSecurityConfigFromEnv() SecurityConfig {
	return SecurityConfig{
		BcryptCost:      GetEnvInt("BCRYPT_COST", 12),
		TombstoneKey:    GetEnv("TOMBSTONE_KEY", DefaultTombstoneKey),
		TombstoneLength: GetEnvInt("TOMBSTONE_LENGTH", 11),
	}
}

// Validate validates security configuration.
func (c SecurityConfig) Validate() error {
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("invalid BCRYPT_COST: %d (must be between 4 and 31)", c.BcryptCost)
	}
	if c.TombstoneKey == "" || len(c.TombstoneKey) > maxTombstoneKeyLen {
		return fmt.Errorf("TOMBSTONE_KEY must be between 1 and %d bytes", maxTombstoneKeyLen)
	}
	if c.TombstoneLength < minTombstoneLength || c.TombstoneLength > maxTombstoneLength {
		return fmt.Errorf("TOMBSTONE_LENGTH must be between %d and %d, got %d",
			minTombstoneLength, maxTombstoneLength, c.TombstoneLength)
	}
	return nil
}
