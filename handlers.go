package main

import (
	"embed"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/otiai10/opengraph/v2"
)

func (app *App) HandleHome(w http.ResponseWriter, r *http.Request) {
	app.Templates.Home.ServeHTTP(w, r)
}

// HandleBanner serves the bare banner fragment for hosts that embed it.
func (app *App) HandleBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, string(CareerNavigatorBanner())); err != nil {
		log.Printf("error while writing banner: %v", err)
	}
}

func (app *App) HandleHits(w http.ResponseWriter, r *http.Request) {
	banner, ok := mux.Vars(r)["banner"]
	if !ok {
		writeBadRequest(w, "banner missing")
		return
	}

	if !knownBanners[banner] {
		writeBadRequest(w, "unknown banner, got "+banner)
		return
	}

	if err := app.DB.IncrementHit(banner); err != nil {
		log.Printf("error while incrementing hits: %v", err)
		writeInternalServerErr(w)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("{}"))
}

func (app *App) renderAdminPage(data Page) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := app.Templates.Admin.Execute(w, data); err != nil {
			log.Printf("error while writing template: %v", err)
			writeInternalServerErr(w)
			return
		}
	}
}

func (app *App) renderAdminPageWithErrMessage(msg string, p Page) func(w http.ResponseWriter, r *http.Request) {
	p.Error = msg
	return app.renderAdminPage(p)
}

func (app *App) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	p, err := app.adminPage()
	if err != nil {
		log.Printf("error while loading admin page: %v", err)
		app.renderAdminPageWithErrMessage(err.Error(), app.Data)(w, r)
		return
	}

	app.renderAdminPage(p)(w, r)
}

// HandleAdminCheck fetches the OpenGraph data of the banner's outbound link
// and shows it on the admin page.
func (app *App) HandleAdminCheck(w http.ResponseWriter, r *http.Request) {
	p, err := app.adminPage()
	if err != nil {
		log.Printf("error while loading admin page: %v", err)
		app.renderAdminPageWithErrMessage(err.Error(), app.Data)(w, r)
		return
	}

	ogp, err := opengraph.Fetch(p.CTAURL)
	if err != nil {
		app.renderAdminPageWithErrMessage(
			fmt.Sprintf("error while fetching link: %v", err), p)(w, r)
		return
	}

	ogp.ToAbs()
	if len(ogp.Image) > 0 {
		p.OGPImage = ogp.Image[0].URL
	}
	p.OGPTitle = ogp.Title
	p.OGPDescription = ogp.Description
	p.Success = "Link is reachable."

	app.renderAdminPage(p)(w, r)
}

// customFileServer creates a handler that overlays customDir on top of staticFS.
func customFileServer(customDir string, staticFS embed.FS) http.Handler {
	staticHandler := http.FileServer(http.FS(staticFS))
	if customDir == "" {
		return staticHandler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customPath := filepath.Join(customDir, filepath.Clean("/"+r.URL.Path))
		if fi, err := os.Stat(customPath); err == nil && !fi.IsDir() {
			http.ServeFile(w, r, customPath)
			return
		}

		staticHandler.ServeHTTP(w, r)
	})
}
