// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/printworks/printbot/internal/core"
)

// tokenPlaceholder is the value the provisioner writes into a fresh secrets
// file. A token that still reads like this has never been filled in.
const tokenPlaceholder = "replace-with-botfather-token"

// Settings are the credentials the bot runtime needs before it can talk to
// Telegram. They live in the secrets file, not in the tool configuration,
// so the operator can rotate them without touching anything else.
type Settings struct {
	// Token authenticates against the Telegram Bot API.
	Token string

	// AdminID is the Telegram user that manages the whitelist. The admin is
	// always allowed to use the bot and can never be removed from it.
	AdminID int64
}

// LoadSettings reads the secrets file of the environment tree. Process
// environment variables of the same names win over the file, so a value can
// be overridden for a single invocation without editing anything.
func LoadSettings() (*Settings, error) {
	settings, err := loadSettingsFrom(core.SecretsFile)
	if err != nil {
		return nil, err
	}

	// Surface the remaining keys the way systemd's EnvironmentFile= would, so
	// the device overrides in the secrets file reach the printing config in a
	// foreground run too. Variables that are already set stay untouched.
	if err := godotenv.Load(core.SecretsFile); err != nil {
		return nil, SettingsError.Wrap(err, "cannot load secrets file %s into the environment", core.SecretsFile)
	}

	return settings, nil
}

func loadSettingsFrom(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NotConfiguredError.New(
				"secrets file %s does not exist; run 'printbot provision' to set up the environment, then fill in the bot credentials", path)
		}
		return nil, SettingsError.Wrap(err, "cannot access secrets file %s", path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, SettingsError.Wrap(err, "cannot parse secrets file %s", path)
	}

	token := strings.TrimSpace(envOr("BOT_TOKEN", values["BOT_TOKEN"]))
	if token == "" || token == tokenPlaceholder {
		return nil, SettingsError.New(
			"BOT_TOKEN is not set in %s; paste the token issued by @BotFather", path)
	}

	adminRaw := strings.TrimSpace(envOr("ADMIN_ID", values["ADMIN_ID"]))
	adminID, err := strconv.ParseInt(adminRaw, 10, 64)
	if err != nil || adminID <= 0 {
		return nil, SettingsError.New(
			"ADMIN_ID in %s must be a positive Telegram user id, got %q", path, adminRaw)
	}

	return &Settings{Token: token, AdminID: adminID}, nil
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
