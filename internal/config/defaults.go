package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Wikidata.QueryEndpoint == "" {
		cfg.Wikidata.QueryEndpoint = "https://query.wikidata.org/sparql"
	}
	if cfg.Wikidata.SearchEndpoint == "" {
		cfg.Wikidata.SearchEndpoint = "https://www.wikidata.org/w/api.php"
	}
	if cfg.Wikidata.WikiSite == "" {
		cfg.Wikidata.WikiSite = "https://en.wikipedia.org/"
	}
	if cfg.Wikidata.Language == "" {
		cfg.Wikidata.Language = "en"
	}
	if cfg.Wikidata.UserAgent == "" {
		cfg.Wikidata.UserAgent = "tantei (https://github.com/hyperjump/tantei)"
	}
	if cfg.Wikidata.TimeoutSeconds == 0 {
		cfg.Wikidata.TimeoutSeconds = 15
	}
	if cfg.Wikidata.RequestsPerSecond == 0 {
		cfg.Wikidata.RequestsPerSecond = 5
	}
	if cfg.Resolve.SearchLimit == 0 {
		cfg.Resolve.SearchLimit = 10
	}
}
