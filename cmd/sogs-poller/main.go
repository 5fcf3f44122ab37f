package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sogsync/internal/adapter"
	"sogsync/internal/config"
	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/internal/service"
	"sogsync/internal/store"
	"sogsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("sogs-poller")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("poller exited with error")
	}
	log.Info().Msg("poller stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	privKey, err := hex.DecodeString(cfg.Identity.PrivateKeyHex)
	if err != nil {
		return fmt.Errorf("decode identity key: %w", err)
	}
	keyPair, err := crypto.KeyPairFromPrivateKey(privKey)
	if err != nil {
		return fmt.Errorf("load identity key: %w", err)
	}
	log.Info().Str("session_id", keyPair.SessionID()).Msg("identity loaded")

	rooms := store.NewRoomRepository(db, log)
	conversations := store.NewConversationRepository(db, log)
	messages := store.NewMessageRepository(db, log)
	blindedKeys := store.NewBlindedKeyRepository(db, log)

	resolver, err := service.NewBlindedResolver(ctx, blindedKeys, keyPair, log)
	if err != nil {
		return fmt.Errorf("build blinded resolver: %w", err)
	}

	ingestor := service.NewStoreIngestor(messages, conversations, keyPair, log)
	verifier := service.NewSignatureVerifier(log)

	dispatcher := service.NewBatchDispatcher(
		service.NewCapabilitiesHandler(rooms, log),
		service.NewPollInfoHandler(rooms, conversations, log),
		service.NewMessageSyncHandler(rooms, messages, verifier, resolver, ingestor, log),
		service.NewInboxOutboxHandler(rooms, conversations, resolver, ingestor, ingestor, keyPair, log),
		log,
	)

	client := adapter.NewBatchClient(cfg.Poller.RequestTimeout, log)
	poller := service.NewPollService(client, rooms, dispatcher, log)

	job := workers.NewPollJob(poller, cfg.Poller.Servers, log)
	job.Start(ctx, cfg.Poller.Interval)
	defer job.Stop()

	<-ctx.Done()
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
