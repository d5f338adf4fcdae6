package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ironbank/internal/flagx"
	"github.com/dmitrijs2005/ironbank/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC        string         `json:"endpoint_addr_grpc"`
	EndpointAddrOps         string         `json:"endpoint_addr_ops"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	RedisURL                string         `json:"redis_url"`
	ClientOrigin            string         `json:"client_origin"`
	MailMode                string         `json:"mail_mode"`
	SMTPHost                string         `json:"smtp_host"`
	SMTPPort                int            `json:"smtp_port"`
	SMTPUser                string         `json:"smtp_user"`
	SMTPPassword            string         `json:"smtp_password"`
	MailFrom                string         `json:"mail_from"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	TransferTimeout         timex.Duration `json:"transfer_timeout"`
	PurgeInterval           timex.Duration `json:"purge_interval"`
	Argon2Memory            uint32         `json:"argon2_memory_kib"`
	Argon2Time              uint32         `json:"argon2_time"`
	Argon2Parallelism       uint8          `json:"argon2_parallelism"`
}

// parseJson overlays values from the JSON file named by -c/-config (or
// IRONBANK_CONFIG) onto config. Keys absent from the file leave the current
// value untouched. An unreadable or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrOps, c.EndpointAddrOps)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.RedisURL, c.RedisURL)
	setString(&config.ClientOrigin, c.ClientOrigin)
	setString(&config.MailMode, c.MailMode)
	setString(&config.SMTPHost, c.SMTPHost)
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.TransferTimeout.Duration != 0 {
		config.TransferTimeout = c.TransferTimeout.Duration
	}
	if c.PurgeInterval.Duration != 0 {
		config.PurgeInterval = c.PurgeInterval.Duration
	}
	if c.Argon2Memory != 0 {
		config.Argon2.Memory = c.Argon2Memory
	}
	if c.Argon2Time != 0 {
		config.Argon2.Time = c.Argon2Time
	}
	if c.Argon2Parallelism != 0 {
		config.Argon2.Parallelism = c.Argon2Parallelism
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
