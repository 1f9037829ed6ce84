package shop

// Config holds the flag-item mechanic configuration. The flag item is a
// fixed catalog entry whose purchase reveals a secret token in the
// checkout response.
type Config struct {
	// FlagProductID is the catalog id of the flag item.
	FlagProductID int `env:"FLAG_PRODUCT_ID" envDefault:"12"`

	// FlagToken is the secret revealed on flag-item purchase. The
	// default is a redacted placeholder; deployments set FLAG.
	FlagToken string `env:"FLAG" envDefault:"alfa{***REDACTED***}"`
}
