package web

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/asmita0917/multi-user-blog/internal/auth"
	"github.com/asmita0917/multi-user-blog/internal/config"
	"github.com/asmita0917/multi-user-blog/internal/database"
)

type app struct {
	infoLog        *log.Logger
	errorLog       *log.Logger
	HTMLDir        string
	StaticDir      string
	Signer         *auth.Signer
	UserService    *database.UserService
	PostService    *database.PostService
	CommentService *database.CommentService
}

func RunApp() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		errorLog.Fatal("Failed to load config:", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP network address")
	htmlDir := flag.String("html-dir", cfg.HTMLDir, "Path to HTML templates")
	staticDir := flag.String("static-dir", cfg.StaticDir, "Path to static assets")
	dsn := flag.String("dsn", cfg.DSN, "Path to SQLite3 database file")

	flag.Parse()

	db, err := database.NewDatabase(*dsn)
	if err != nil {
		errorLog.Fatal("Failed to open SQLite DB:", err)
	}
	defer db.Close()

	infoLog.Println("SQLite DB connected:", *dsn)

	app := &app{
		infoLog:        infoLog,
		errorLog:       errorLog,
		HTMLDir:        *htmlDir,
		StaticDir:      *staticDir,
		Signer:         auth.NewSigner(cfg.SessionSecret),
		UserService:    database.NewUserService(db),
		PostService:    database.NewPostService(db),
		CommentService: database.NewCommentService(db),
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: app.errorLog,
		Handler:  app.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
