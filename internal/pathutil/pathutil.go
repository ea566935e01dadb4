// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/stint/store"
)

const envStint = "STINT_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

// Resolve computes the application paths from the XDG base directories and
// the STINT_ENV environment variable.
func Resolve() (*Paths, error) {
	p := &Paths{
		configDir:      "stint",
		configFileName: "config.yml",
		boltFileName:   "stint.db",
		sqliteFileName: "stint.sqlite",
		logFileName:    "stint.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

// DBFilePath returns the default database file for a file based backend.
func (p *Paths) DBFilePath(backend store.Backend) string {
	if backend == store.BackendSQLite {
		return p.sqliteFilePath
	}

	return p.boltFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envStint))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("stint_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("stint_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("stint_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.boltFilePath = filepath.Join(dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
