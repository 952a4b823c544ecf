package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/alex-monroe/fantasy-pulse-sub000/cache"
	"github.com/alex-monroe/fantasy-pulse-sub000/controller"
	"github.com/alex-monroe/fantasy-pulse-sub000/db"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/nflcom"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/yahoo"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
	"github.com/alex-monroe/fantasy-pulse-sub000/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	cacheDir := os.Getenv("PLAYER_CACHE_DIR")
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}

	sessionCookie := os.Getenv("SESSION_COOKIE")
	if sessionCookie == "" {
		sessionCookie = "fp_user"
	}

	yahooClientID := os.Getenv("YAHOO_CLIENT_ID")
	yahooClientSecret := os.Getenv("YAHOO_CLIENT_SECRET")
	oauthRedirectURL := os.Getenv("OAUTH_REDIRECT_URL")

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	storage, err := cache.NewFSStorage(cacheDir)
	if err != nil {
		log.Fatalf("error creating player cache storage: %v", err)
	}
	playerCache := cache.New(clock, storage)

	sleeperClient, err := sleeper.New(playerCache)
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	yahooClient, err := yahoo.New()
	if err != nil {
		log.Fatalf("error creating yahoo client: %v", err)
	}

	nflClient, err := nflcom.New()
	if err != nil {
		log.Fatalf("error creating nfl.com client: %v", err)
	}

	var yahooConfig *oauth2.Config

	if yahooClientID != "" && yahooClientSecret != "" && oauthRedirectURL != "" {
		yahooConfig = &oauth2.Config{
			ClientID:     yahooClientID,
			ClientSecret: yahooClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
				TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
			},
			RedirectURL: oauthRedirectURL,
		}
	}

	ctrl, err := controller.New(clock, db, sleeperClient, yahooClient, nflClient, yahooConfig)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	sessions := &web.CookieSessions{CookieName: sessionCookie}
	server, err := web.NewServer(portNum, ctrl, sessions)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
