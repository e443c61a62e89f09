/*
Copyright 2023 The Alibaba Cloud Serverless Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mycraftmw/scaler/go/pkg/config"
	"github.com/mycraftmw/scaler/go/pkg/metrics"
	"github.com/mycraftmw/scaler/go/pkg/scaler"
	"github.com/mycraftmw/scaler/go/pkg/server"
)

var (
	configFile string
	version    = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scaler",
		Short: "Function-instance scaler control plane",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file (optional, env vars override)")

	rootCmd.AddCommand(serveCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scaler version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var listenAddr, platformAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scaler gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			config.ApplyEnv(cfg)
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			if platformAddr != "" {
				cfg.PlatformAddr = platformAddr
			}

			initLogging(cfg)
			metrics.Init(cfg.MetricsNamespace)

			log.Info().Str("listen_addr", cfg.ListenAddr).Str("platform_addr", cfg.PlatformAddr).Msg("starting scaler")

			ctx, cancelDial := context.WithCancel(context.Background())
			defer cancelDial()
			client, err := server.DialPlatformWithRetry(ctx, cfg)
			if err != nil {
				return fmt.Errorf("dial platform: %w", err)
			}
			defer client.Close()

			core := scaler.New(cfg, client)
			defer core.Close()

			grpcServer := server.NewGRPCServer(cfg, core)

			lis, err := net.Listen("tcp", cfg.ListenAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
			}

			metricsServer := &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler()}
			go func() {
				if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("metrics server exited")
				}
			}()

			go func() {
				if err := grpcServer.Serve(lis); err != nil {
					log.Error().Err(err).Msg("grpc server exited")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info().Msg("shutdown signal received, draining")

			grpcServer.GracefulStop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = metricsServer.Shutdown(shutdownCtx)

			return nil
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Override the Scaler gRPC listen address")
	cmd.Flags().StringVar(&platformAddr, "platform", "", "Override the Platform gRPC address")
	return cmd
}

func initLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
