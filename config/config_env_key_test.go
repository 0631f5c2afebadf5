package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"cms": map[string]any{
			"baseUrl":   "",
			"apiSecret": "",
			"cacheTtl":  "60s",
		},
		"webhooks": map[string]any{
			"order": "",
		},
		"content": map[string]any{
			"defaultLocale": "en",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CMS_BASEURL", want: "cms.baseUrl"},
		{envKey: "CMS_APISECRET", want: "cms.apiSecret"},
		{envKey: "CMS_CACHETTL", want: "cms.cacheTtl"},
		{envKey: "WEBHOOKS_ORDER", want: "webhooks.order"},
		{envKey: "CONTENT_DEFAULTLOCALE", want: "content.defaultLocale"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{CMS: &CMSConfig{BaseURL: "http://cms.local"}}
	cfg.applyDefaults()

	if cfg.CMS.CacheTTL != defaultCacheTTL {
		t.Fatalf("CacheTTL = %v, want %v", cfg.CMS.CacheTTL, defaultCacheTTL)
	}
	if cfg.Content == nil || cfg.Content.DefaultLocale != "en" {
		t.Fatalf("Content defaults not applied: %+v", cfg.Content)
	}
	if len(cfg.Content.Locales) != 1 || cfg.Content.Locales[0] != "en" {
		t.Fatalf("Locales = %v, want [en]", cfg.Content.Locales)
	}
}
