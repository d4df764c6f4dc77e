package main

import (
	"os"

	"chatvault/backend/internal/app"
)

// @title                       ChatVault API
// @version                     1.0
// @description                 Accounts, chat sessions and message histories for a chat client.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer " followed by the token returned by /register or /login.
func main() {
	os.Exit(app.Run())
}
