package config

import "testing"

func TestParseHours(t *testing.T) {
	hours, err := ParseHours(" 10, 12,14 ,")
	if err != nil {
		t.Fatalf("ParseHours: %v", err)
	}
	if len(hours) != 3 || hours[0] != 10 || hours[2] != 14 {
		t.Fatalf("unexpected hours %v", hours)
	}

	for _, bad := range []string{"", "25", "ten", ","} {
		if _, err := ParseHours(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		TelegramToken:  "t",
		AIProvider:     "gemini",
		GoogleAPIKey:   "k",
		StorageBackend: "memory",
		SessionBackend: "memory",
		SlotHours:      "10,12",
		ClinicTimezone: "UTC",
	}
	if err := base.validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	pg := base
	pg.StorageBackend = "postgres"
	if err := pg.validate(); err == nil {
		t.Fatal("expected DATABASE_URL error")
	}

	oa := base
	oa.AIProvider = "openai"
	if err := oa.validate(); err == nil {
		t.Fatal("expected OPENAI_API_KEY error")
	}

	tz := base
	tz.ClinicTimezone = "Mars/Olympus"
	if err := tz.validate(); err == nil {
		t.Fatal("expected timezone error")
	}
}
