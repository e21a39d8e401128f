package router

import (
	"net/http"
	"path/filepath"

	"energy-tracker/app/controllers"
	"energy-tracker/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, histCtrl *controllers.HistoryController, mw *middleware.Auth, staticDir string) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/register", authCtrl.Register)
	mux.HandleFunc("/login", authCtrl.Login)
	mux.Handle("/me", mw.WithSession(http.HandlerFunc(authCtrl.Me)))
	mux.HandleFunc("/logout", authCtrl.Logout)

	// user endpoints
	mux.Handle("/api/save_history", mw.RequireUser(http.HandlerFunc(histCtrl.Save)))
	mux.Handle("/user/history", mw.RequireUser(http.HandlerFunc(histCtrl.ListOwn)))

	// admin endpoints
	mux.Handle("/admin/history", mw.RequireAdmin(http.HandlerFunc(histCtrl.ListAll)))
	mux.Handle("DELETE /admin/delete-history/{id}", mw.RequireAdmin(http.HandlerFunc(histCtrl.DeleteOne)))
	mux.Handle("DELETE /admin/delete-all-history", mw.RequireAdmin(http.HandlerFunc(histCtrl.DeleteAll)))

	// app page behind the session check, static assets for everything else
	fs := http.FileServer(http.Dir(staticDir))
	mux.Handle("/", mw.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			fs.ServeHTTP(w, r)
			return
		}
		if middleware.GetSnapshot(r.Context()) == nil {
			http.Redirect(w, r, "/login.html", http.StatusFound)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})))

	return mux
}
