package main

import (
	"crypto/subtle"
	"net/http"

	"github.com/urfave/negroni"
)

func writeInternalServerErr(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("500 - Internal Server Error!"))
}

func writeBadRequest(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("400 - " + message))
}

func basicAuth(cfg Config) negroni.HandlerFunc {
	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		user, pass, _ := r.BasicAuth()

		// Empty credentials in config lock the admin out instead of opening it.
		if cfg.Auth.Username == "" || cfg.Auth.Password == "" ||
			subtle.ConstantTimeCompare([]byte(cfg.Auth.Username), []byte(user)) != 1 ||
			subtle.ConstantTimeCompare([]byte(cfg.Auth.Password), []byte(pass)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized.", http.StatusUnauthorized)
			return
		}

		next(w, r)
	})
}
