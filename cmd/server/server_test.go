package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lighting/internal/config"
)

type LoadConfigTestSuite struct {
	suite.Suite
	cmd *cobra.Command
}

func TestLoadConfigTestSuite(t *testing.T) {
	suite.Run(t, new(LoadConfigTestSuite))
}

func (s *LoadConfigTestSuite) SetupTest() {
	s.cmd = &cobra.Command{Use: "server"}
	bindServerFlags(s.cmd)
}

func (s *LoadConfigTestSuite) TestFlagFixesInvalidEnvironment() {
	s.T().Setenv("LIGHTING_LOG_LEVEL", "bogus")
	s.Require().NoError(s.cmd.Flags().Set("log-level", "debug"))

	cfg, err := loadConfig(s.cmd)
	s.Require().NoError(err)
	s.Equal("debug", cfg.LogLevel)
}

func (s *LoadConfigTestSuite) TestInvalidEnvironmentWithoutFlag() {
	s.T().Setenv("LIGHTING_LOG_LEVEL", "bogus")

	_, err := loadConfig(s.cmd)
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid config")
}

func (s *LoadConfigTestSuite) TestInvalidFlagIsRejected() {
	s.Require().NoError(s.cmd.Flags().Set("port", "0"))

	_, err := loadConfig(s.cmd)
	s.Require().Error(err)
	s.Contains(err.Error(), "GRPCPort")
}

func (s *LoadConfigTestSuite) TestRedisAddrImpliesRedis() {
	s.Require().NoError(s.cmd.Flags().Set("redis-addr", "cache:6379"))

	cfg, err := loadConfig(s.cmd)
	s.Require().NoError(err)
	s.Equal(config.StorageRedis, cfg.Storage)
	s.Equal("cache:6379", cfg.Redis.Addr)
}

func (s *LoadConfigTestSuite) TestExplicitStorageWins() {
	s.Require().NoError(s.cmd.Flags().Set("redis-addr", "cache:6379"))
	s.Require().NoError(s.cmd.Flags().Set("storage", config.StorageMemory))

	cfg, err := loadConfig(s.cmd)
	s.Require().NoError(err)
	s.Equal(config.StorageMemory, cfg.Storage)
}

func (s *LoadConfigTestSuite) TestDefaultsWithoutFlags() {
	cfg, err := loadConfig(s.cmd)
	s.Require().NoError(err)
	s.Equal(50051, cfg.GRPCPort)
	s.Equal(config.StorageMemory, cfg.Storage)
}
