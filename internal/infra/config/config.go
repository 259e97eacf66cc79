package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	CRAPIKey      string // sin key el finder arranca igual, pero cada búsqueda falla con ErrMissingAPIKey
	CRAPIBase     string // opcional, default proxy de royaleapi
	DatabaseURL   string // opcional: sin DB los filtros guardados viven en memoria
	HTTPAddr      string // opcional, default :5050
	Password      string // opcional: vacío = sin login
	FilterProfile string // perfil de filtros por defecto
	GameModesFile string // opcional: yaml que reemplaza al embebido

	CrawlWorkers  int
	DetailWorkers int
	DBMaxConns    int

	LogLevel  string // debug | info | warn | error
	LogFormat string // text | json

	// solo cmd/bot
	DiscordToken string
	DiscordGuild string
	AdminRoleIDs []string // DISCORD_ADMIN_ROLE_IDS, separados por coma
}

func Load() Config {
	cfg := Config{
		CRAPIKey:      get("CR_API_KEY", false),
		CRAPIBase:     get("CR_API_BASE", false),
		DatabaseURL:   get("DATABASE_URL", false),
		HTTPAddr:      get("HTTP_ADDR", false),
		Password:      get("CR_FINDER_PASSWORD", false),
		FilterProfile: get("FILTER_PROFILE", false),
		GameModesFile: get("GAME_MODES_FILE", false),
		CrawlWorkers:  getInt("CRAWL_WORKERS", 40),
		DetailWorkers: getInt("DETAIL_WORKERS", 40),
		DBMaxConns:    getInt("DB_MAX_CONNS", 10),
		LogLevel:      get("LOG_LEVEL", false),
		LogFormat:     get("LOG_FORMAT", false),
		DiscordToken:  get("DISCORD_BOT_TOKEN", false),
		DiscordGuild:  get("DISCORD_GUILD_ID", false),
		AdminRoleIDs:  getList("DISCORD_ADMIN_ROLE_IDS"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":5050"
	}
	if cfg.FilterProfile == "" {
		cfg.FilterProfile = "default"
	}
	return cfg
}

// RequireDiscord corta el proceso si faltan las vars del bot.
func (c Config) RequireDiscord() {
	if c.DiscordToken == "" {
		log.Fatalf("faltante env %s", "DISCORD_BOT_TOKEN")
	}
	if c.DiscordGuild == "" {
		log.Fatalf("faltante env %s", "DISCORD_GUILD_ID")
	}
}

func get(k string, req bool) string {
	v := os.Getenv(k)
	if v == "" && req {
		log.Fatalf("faltante env %s", k)
	}
	return v
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ env %s=%q inválida, uso %d", k, v, def)
		return def
	}
	return n
}

func getList(k string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
