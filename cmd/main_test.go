package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	if configPath != "config.env" {
		t.Errorf("expected config.env, got %s", configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	if configPath != "myconfig.env" {
		t.Errorf("expected myconfig.env, got %s", configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-01-15"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "v1.0.0") ||
		!strings.Contains(output, "abcd1234") ||
		!strings.Contains(output, "2026-01-15") {
		t.Errorf("unexpected build info output: %s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	appHost, appPort, logLevel,
		pgHost, pgPort, _, _, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, _,
		redisPoolSize, _, cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig("does-not-exist.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app defaults: %s %s %s", appHost, appPort, logLevel)
	}
	if pgHost != "localhost" || pgPort != 5432 || pgDB != "userdb" {
		t.Errorf("unexpected postgres defaults: %s %d %s", pgHost, pgPort, pgDB)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected pool defaults: %d %d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPoolSize != 10 {
		t.Errorf("unexpected redis defaults: %s %d %d %d", redisHost, redisPort, redisDB, redisPoolSize)
	}
	if cacheTTLSecond != 60 {
		t.Errorf("unexpected cache TTL default: %d", cacheTTLSecond)
	}
	if kafkaBrokers != "" || kafkaTopic != "user-events" {
		t.Errorf("unexpected kafka defaults: %q %q", kafkaBrokers, kafkaTopic)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_PORT", "15432")
	os.Setenv("KAFKA_BROKERS", "broker:9092")
	os.Setenv("USER_CACHE_TTL_SECOND", "300")
	defer os.Clearenv()

	_, appPort, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		_, _, cacheTTLSecond,
		kafkaBrokers, _,
		err := parseConfig("does-not-exist.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appPort != "9090" {
		t.Errorf("expected 9090, got %s", appPort)
	}
	if pgPort != 15432 {
		t.Errorf("expected 15432, got %d", pgPort)
	}
	if cacheTTLSecond != 300 {
		t.Errorf("expected 300, got %d", cacheTTLSecond)
	}
	if kafkaBrokers != "broker:9092" {
		t.Errorf("expected broker:9092, got %s", kafkaBrokers)
	}
}

func TestParseConfig_BadInt(t *testing.T) {
	os.Clearenv()
	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer os.Clearenv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _, _,
		_, _,
		err := parseConfig("does-not-exist.env")

	if err == nil {
		t.Error("expected error for non-numeric POSTGRES_PORT")
	}
}
