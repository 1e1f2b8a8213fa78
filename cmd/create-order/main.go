package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/joho/godotenv"
)

// Interactive script placing an order on behalf of a customer.
func main() {
	_ = godotenv.Load()
	config.InitDB()

	users := store.NewUsers(config.DB)
	recipes := store.NewRecipes(config.DB)
	orders := store.NewOrders(config.DB)

	reader := bufio.NewReader(os.Stdin)

	email := prompt(reader, "What is the email of the user creating the order? ")
	customer, err := users.FindByEmail(email)
	if err != nil || customer.Role != models.RoleCustomer {
		fmt.Println("\nUser not found or does not have the required role.")
		os.Exit(0)
	}

	restaurants, err := users.ListByRole(models.RoleRestaurant)
	if err != nil {
		fail(err)
	}
	if len(restaurants) == 0 {
		fmt.Println("\nNo restaurants available.")
		os.Exit(0)
	}
	fmt.Println("Restaurants:")
	for _, r := range restaurants {
		fmt.Printf("  [%d] %s\n", r.ID, r.Name)
	}
	restaurantID := promptID(reader, "Select a restaurant id: ")

	menu, err := recipes.ListByOwner(restaurantID)
	if err != nil {
		fail(err)
	}
	if len(menu) == 0 {
		fmt.Println("\nThis restaurant has no recipes.")
		os.Exit(0)
	}
	fmt.Println("Recipes:")
	for _, recipe := range menu {
		fmt.Printf("  [%d] %s = %.2f€\n", recipe.ID, recipe.Name, recipe.Price)
	}

	byID := map[uint]models.Recipe{}
	for _, recipe := range menu {
		byID[recipe.ID] = recipe
	}

	var items []models.OrderItem
	raw := prompt(reader, "Enter recipe ids, comma separated: ")
	for _, field := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			fail(fmt.Errorf("invalid recipe id %q", field))
		}
		recipe, ok := byID[uint(id)]
		if !ok {
			fail(fmt.Errorf("recipe %d does not belong to this restaurant", id))
		}
		items = append(items, models.OrderItem{Name: recipe.Name, Image: recipe.Image, Price: recipe.Price})
	}

	order, err := models.NewOrder(customer, restaurantID, items)
	if err != nil {
		fail(err)
	}
	if err := orders.Create(order); err != nil {
		fail(err)
	}

	fmt.Println("\nOrder created")
}

func prompt(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, err := reader.ReadString('\n')
	if err != nil {
		fail(err)
	}
	return strings.TrimSpace(line)
}

func promptID(reader *bufio.Reader, question string) uint {
	raw := prompt(reader, question)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fail(fmt.Errorf("invalid id %q", raw))
	}
	return uint(id)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "\nAn error occurred: %v\n", err)
	os.Exit(1)
}
