package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	home string
}

func (s *ConfigTestSuite) SetupTest() {
	s.home = s.T().TempDir()
	homeDir = func() (string, error) { return s.home, nil }
}

func (s *ConfigTestSuite) TearDownTest() {
	homeDir = os.UserHomeDir
}

func (s *ConfigTestSuite) writeConfig(dir, body string) string {
	s.Require().NoError(os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, AppName+".yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0644))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(runtime.NumCPU(), cfg.Threads)
	s.Equal(".palzignore", cfg.IgnoreFile)
	s.Empty(cfg.Report)
	s.Equal("warn", cfg.Log.Level)
	s.Equal("console", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestUserConfigDir() {
	s.writeConfig(filepath.Join(s.home, ".config", AppName), "threads: 3\nlog:\n  level: debug\n")

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(3, cfg.Threads)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("console", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestExplicitFile() {
	path := s.writeConfig(s.T().TempDir(), "threads: 2\nreport: out.json\nignore_file: .skip\nlog:\n  format: json\n")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(2, cfg.Threads)
	s.Equal("out.json", cfg.Report)
	s.Equal(".skip", cfg.IgnoreFile)
	s.Equal("json", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestMissingExplicitFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestEnvironmentOverridesFile() {
	path := s.writeConfig(s.T().TempDir(), "threads: 2\nlog:\n  level: info\n")
	s.T().Setenv("PALZ_THREADS", "7")
	s.T().Setenv("PALZ_LOG_LEVEL", "error")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(7, cfg.Threads)
	s.Equal("error", cfg.Log.Level)
}

func (s *ConfigTestSuite) TestFlagOverridesEnvironment() {
	s.T().Setenv("PALZ_THREADS", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntP("threads", "t", 0, "")
	s.Require().NoError(flags.Parse([]string{"-t", "5"}))

	loader := NewLoader()
	s.Require().NoError(loader.BindFlag("threads", flags.Lookup("threads")))
	cfg, err := loader.Load("")
	s.Require().NoError(err)
	s.Equal(5, cfg.Threads)
}

func (s *ConfigTestSuite) TestUnchangedFlagKeepsDefault() {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("threads", 0, "")
	s.Require().NoError(flags.Parse(nil))

	loader := NewLoader()
	s.Require().NoError(loader.BindFlag("threads", flags.Lookup("threads")))
	cfg, err := loader.Load("")
	s.Require().NoError(err)
	s.Equal(runtime.NumCPU(), cfg.Threads)
}

func (s *ConfigTestSuite) TestBindMissingFlag() {
	s.Error(NewLoader().BindFlag("threads", nil))
}

func (s *ConfigTestSuite) TestInvalidThreads() {
	s.T().Setenv("PALZ_THREADS", "0")

	_, err := Load("")
	s.Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
