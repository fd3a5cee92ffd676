package repository

// TransactionCache holds one fetched transaction block, keyed by digest and
// network. Entries expire after the transaction TTL.
type TransactionCache struct {
	Digest   string `gorm:"primaryKey;size:64;not null"`
	Network  string `gorm:"primaryKey;size:16;not null"`
	Data     []byte `gorm:"not null"`
	CachedAt int64  `gorm:"not null;index"`
}

// TaxRateCache holds jurisdiction rate data, keyed by country code. Entries
// expire after the rates TTL.
type TaxRateCache struct {
	Country  string `gorm:"primaryKey;size:8;not null"`
	Data     []byte `gorm:"not null"`
	CachedAt int64  `gorm:"not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
