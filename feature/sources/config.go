package sources

// Config holds configuration for the source tables.
type Config struct {
	// Dir is the local directory holding the tables.
	Dir string `mapstructure:"dir" default:"data"`
	// Active is the file name of the current currency table (ISO list one).
	Active string `mapstructure:"active" default:"list-one.csv"`
	// Historic is the file name of the historic currency table (ISO list three).
	Historic string `mapstructure:"historic" default:"list-three.csv"`
	// Crosswalk is the file name of the country/currency crosswalk.
	Crosswalk string `mapstructure:"crosswalk" default:"country-codes.csv"`
	// FromStorage reads the tables from object storage instead of Dir.
	FromStorage bool `mapstructure:"from_storage" default:"false"`
	// Prefix is the object key prefix of the tables in the bucket.
	Prefix string `mapstructure:"prefix" default:"sources"`
}

// Tables returns the three table file names in build order.
func (c Config) Tables() []string {
	return []string{c.Active, c.Historic, c.Crosswalk}
}
