package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"

	"tuition-calculator/config"
	"tuition-calculator/controllers"
	"tuition-calculator/db"
	"tuition-calculator/driver"
	"tuition-calculator/middleware"
	"tuition-calculator/models"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn := driver.ConnectDB(cfg.DatabaseURL)
	defer conn.Close()
	log.Infof("Connected to the database at %s.", cfg.DatabaseURL)

	if err := db.Migrate(conn); err != nil {
		log.Fatal("Error preparing the database schema: ", err)
	}

	state := &models.AppState{
		AppName: "Tuition Calculator",
		DB:      conn,
	}

	tuitionController := controllers.TuitionController{}
	lookupController := controllers.LookupController{}
	pageController := controllers.PageController{}

	router := mux.NewRouter()
	router.HandleFunc("/", middleware.WithLogging(pageController.Index())).Methods("GET")
	router.HandleFunc("/style.css", middleware.WithLogging(pageController.Style())).Methods("GET")
	router.HandleFunc("/lookup", middleware.WithLogging(lookupController.Lookup(state))).Methods("POST")
	router.HandleFunc("/calculate", middleware.WithLogging(tuitionController.Calculate(state))).Methods("POST")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	serverURL := cfg.Addr()
	log.Infof("Server started at %s. Application name: %q", serverURL, state.AppName)

	if err := browser.OpenURL("http://" + serverURL); err != nil {
		log.Warn("Could not open the browser: ", err)
	}

	log.Fatal(http.ListenAndServe(serverURL, router))
}
