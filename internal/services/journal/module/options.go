package module

import "bitlog/internal/platform/config"

// Options holds configuration settings for the journal module
type Options struct {
	OffsetHours int
	Weeks       int
	FetchLimit  int
	TZ          string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	jf := cfg.Prefix("CORE_JOURNAL_")
	return Options{
		OffsetHours: jf.MayInt("OFFSET_HOURS", 5),
		Weeks:       jf.MayInt("WEEKS", 53),
		FetchLimit:  jf.MayInt("FETCH_LIMIT", 5000),
		TZ:          jf.MayString("TZ", "UTC"),
	}
}
