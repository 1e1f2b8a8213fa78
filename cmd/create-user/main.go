package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/joho/godotenv"
)

// Interactive script creating a customer account, for seeding and support.
func main() {
	_ = godotenv.Load()
	config.InitDB()

	reader := bufio.NewReader(os.Stdin)
	name := prompt(reader, "What is your name? ")
	email := prompt(reader, "What is your email? ")
	password := prompt(reader, "What is your password? ")

	hash, err := auth.HashPassword(password)
	if err != nil {
		fail(err)
	}
	user, err := models.NewCustomer(email, name, hash)
	if err != nil {
		fail(err)
	}
	if err := store.NewUsers(config.DB).Create(user); err != nil {
		fail(err)
	}

	fmt.Println("\nUser created")
}

func prompt(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, err := reader.ReadString('\n')
	if err != nil {
		fail(err)
	}
	return strings.TrimSpace(line)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "\nAn error occurred: %v\n", err)
	os.Exit(1)
}
