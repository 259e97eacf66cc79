package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/cr-tournament-finder/internal/adapters/discord"
	"github.com/jose-valero/cr-tournament-finder/internal/app/bootstrap"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	cfg.RequireDiscord()

	logger := bootstrap.NewLogger(cfg, os.Stdout)
	modes, err := bootstrap.Modes(cfg)
	if err != nil {
		log.Fatal(err)
	}
	finder := bootstrap.NewFinder(cfg, modes, logger)

	filters, closeDB, err := bootstrap.NewFilters(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	auth := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	r := discordrouter.NewRouter(s, discordrouter.Config{
		GuildID:      cfg.DiscordGuild,
		Profile:      cfg.FilterProfile,
		AdminRoleIDs: cfg.AdminRoleIDs,
	}, finder, filters, modes)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	log.Println("👋 apagando")
}
