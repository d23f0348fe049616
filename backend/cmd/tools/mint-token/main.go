// mint-token prints an access token for a user id, signed with the key from
// the config folder. For local development only.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/forumhub/forum-api/shared/config"
	"github.com/forumhub/forum-api/shared/domain"
	"github.com/forumhub/forum-api/shared/jwt"
)

func main() {
	var configFolder, userId string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&userId, "user", "", "user id to put in the uid claim, e.g. user-123")
	flag.Parse()

	if userId == "" {
		log.Fatal("-user is required")
	}

	cfg := config.MustLoad(configFolder)
	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.User{Id: userId})
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}

	fmt.Println(token)
	fmt.Println()
	fmt.Printf("curl -H \"Authorization: Bearer %s\" ...\n", token)
	fmt.Printf("expires in %s\n", cfg.JwtTTL())
}
