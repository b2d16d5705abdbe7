package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sysdl/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the parse result cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats [flags]",
	Short: "Show cache entry count and size",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [flags]",
	Short: "Remove all cache entries",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", defaultCacheDir(), "cache directory")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func defaultCacheDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "sysdl")
	}
	return ".sysdl-cache"
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	return driver.NewDiskCache(dir)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	cache, err := openCache(cmd)
	if err != nil {
		return err
	}
	entries, bytes, err := cache.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s: %d entries, %d bytes\n", cache.Dir(), entries, bytes)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	cache, err := openCache(cmd)
	if err != nil {
		return err
	}
	return cache.Clear()
}
