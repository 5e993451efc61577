package module

import "bitlog/internal/platform/config"

// Options holds configuration settings for the entries module
type Options struct {
	RecentLimit int
	CensorTerms []string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("CORE_ENTRIES_")
	return Options{
		RecentLimit: ef.MayInt("RECENT_LIMIT", 200),
		CensorTerms: ef.MayCSV("CENSOR_TERMS", nil),
	}
}
