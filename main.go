package main

import (
	"embed"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	flag "github.com/spf13/pflag"
	"github.com/urfave/negroni"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed schema.sql
var setupFS embed.FS

func newRouter(app *App, cfg Config) http.Handler {
	r := mux.NewRouter()
	admin := mux.NewRouter().PathPrefix("/admin").Subrouter().StrictSlash(true)
	r.PathPrefix("/admin").Handler(negroni.New(
		basicAuth(cfg),
		negroni.Wrap(admin),
	))

	r.HandleFunc("/", app.HandleHome).Methods(http.MethodGet)
	r.HandleFunc("/banner", app.HandleBanner).Methods(http.MethodGet)
	r.HandleFunc("/hits/{banner}", app.HandleHits).Methods(http.MethodPost)

	admin.HandleFunc("/", app.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/check", app.HandleAdminCheck).Methods(http.MethodPost)

	r.PathPrefix("/static/").Handler(customFileServer(cfg.StaticFileDir, staticFS))

	return r
}

func runApp(configFilePath string) {
	cfg, err := initConfig(configFilePath)
	if err != nil {
		log.Fatalln(err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	defer app.Close()

	n := negroni.New(negroni.NewRecovery(), negroni.NewLogger())
	n.UseHandler(newRouter(app, cfg))

	srv := &http.Server{
		Handler:      n,
		Addr:         cfg.HTTPAddr,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Println("starting server at", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

func initApp(dbFile, configFile string) error {
	if err := initDB(dbFile); err != nil {
		return err
	}

	cfg := defaultConfig()
	cfg.DBFile = dbFile

	out, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, out, 0o600)
}

func main() {
	var (
		configFilePath = flag.String("config", "config.toml", "path to config file")
		initMode       = flag.Bool("init", false, "app initialization, creates a db and config file in current dir")
	)
	flag.Parse()

	if *initMode {
		if err := initApp("app.db", "config.toml"); err != nil {
			log.Fatal(err)
		}
		log.Println("config.toml and app.db generated.")
		return
	}

	runApp(*configFilePath)
}
