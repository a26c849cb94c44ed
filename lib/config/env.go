package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// readEnv merges the BULMA_ variables of envFile with the process
// environment. A missing envFile is not an error.
func readEnv(envFile string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", envFile, err)
		default:
			for k, v := range fromFile {
				if strings.HasPrefix(k, "BULMA_") {
					env[k] = v
				}
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "BULMA_") {
			env[k] = v
		}
	}
	return env, nil
}
