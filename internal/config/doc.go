// Package config manages snipreg settings stored at ~/.snipreg/config.yaml.
// Values can be overridden with SNIPREG_* environment variables, which may
// also come from a .env file in the working directory. It decides where the
// global, user, and project snippet files live.
package config
