package store

import (
	"testing"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedRestaurant(t *testing.T, users *Users, email string) *models.User {
	t.Helper()
	user, err := models.NewRestaurant(email, "Chez Test", "hash", "1 rue de la Paix", "75001", "Paris")
	require.NoError(t, err)
	require.NoError(t, users.Create(user))
	return user
}

func seedCustomer(t *testing.T, users *Users, email string) *models.User {
	t.Helper()
	user, err := models.NewCustomer(email, "Alice", "hash")
	require.NoError(t, err)
	require.NoError(t, users.Create(user))
	return user
}

func TestUsersCreateAndLookup(t *testing.T) {
	users := NewUsers(testDB(t))
	customer := seedCustomer(t, users, "a@x.com")

	found, err := users.FindByEmail("A@X.com")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)

	found, err = users.FindByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)

	_, err = users.FindByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersEmailUnique(t *testing.T) {
	users := NewUsers(testDB(t))
	seedCustomer(t, users, "a@x.com")

	dup, err := models.NewCustomer("a@x.com", "Bob", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, users.Create(dup), ErrEmailTaken)
}

func TestUsersListByRole(t *testing.T) {
	users := NewUsers(testDB(t))
	seedCustomer(t, users, "a@x.com")
	seedRestaurant(t, users, "r1@x.com")
	seedRestaurant(t, users, "r2@x.com")

	restaurants, err := users.ListByRole(models.RoleRestaurant)
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)

	all, err := users.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUsersUpdate(t *testing.T) {
	users := NewUsers(testDB(t))
	restaurant := seedRestaurant(t, users, "r@x.com")

	updated, err := users.Update(restaurant.ID, map[string]interface{}{
		"name": "Chez Nouveau",
		"city": "Lyon",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chez Nouveau", updated.Name)
	assert.Equal(t, "Lyon", updated.City)

	_, err = users.Update(9999, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersDeleteCascadesRecipes(t *testing.T) {
	db := testDB(t)
	users := NewUsers(db)
	recipes := NewRecipes(db)
	restaurant := seedRestaurant(t, users, "r@x.com")

	for _, name := range []string{"Blanquette", "Tarte"} {
		recipe, err := models.NewRecipe(restaurant.ID, name, "https://img.example/"+name, 9.99)
		require.NoError(t, err)
		require.NoError(t, recipes.Create(recipe))
	}

	require.NoError(t, users.Delete(restaurant.ID))

	owned, err := recipes.ListByOwner(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)

	_, err = users.FindByID(restaurant.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// retried delete reports the missing user, recipe cleanup stays a no-op
	assert.ErrorIs(t, users.Delete(restaurant.ID), ErrNotFound)
}

func TestOrderSnapshotSurvivesRecipeEdit(t *testing.T) {
	db := testDB(t)
	users := NewUsers(db)
	recipes := NewRecipes(db)
	orders := NewOrders(db)

	customer := seedCustomer(t, users, "a@x.com")
	restaurant := seedRestaurant(t, users, "r@x.com")

	recipe, err := models.NewRecipe(restaurant.ID, "Blanquette", "https://img.example/b.jpg", 12.99)
	require.NoError(t, err)
	require.NoError(t, recipes.Create(recipe))

	order, err := models.NewOrder(customer, restaurant.ID, []models.OrderItem{
		{Name: recipe.Name, Image: recipe.Image, Price: recipe.Price},
	})
	require.NoError(t, err)
	require.NoError(t, orders.Create(order))

	_, err = recipes.Update(recipe.ID, map[string]interface{}{"name": "Nouvelle Blanquette", "price": 19.99})
	require.NoError(t, err)

	reloaded, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Blanquette", reloaded.Items[0].Name)
	assert.Equal(t, 12.99, reloaded.Items[0].Price)
}

func TestOrdersCancel(t *testing.T) {
	db := testDB(t)
	users := NewUsers(db)
	orders := NewOrders(db)

	customer := seedCustomer(t, users, "a@x.com")
	restaurant := seedRestaurant(t, users, "r@x.com")

	order, err := models.NewOrder(customer, restaurant.ID, []models.OrderItem{
		{Name: "Tarte", Image: "https://img.example/t.jpg", Price: 6.50},
	})
	require.NoError(t, err)
	require.NoError(t, orders.Create(order))

	cancelled, err := orders.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// visible on subsequent reads
	reloaded, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)

	_, err = orders.Cancel(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrdersListProcessedOnly(t *testing.T) {
	db := testDB(t)
	users := NewUsers(db)
	orders := NewOrders(db)

	customer := seedCustomer(t, users, "a@x.com")
	restaurant := seedRestaurant(t, users, "r@x.com")
	other := seedRestaurant(t, users, "other@x.com")

	items := []models.OrderItem{{Name: "Tarte", Image: "https://img.example/t.jpg", Price: 6.50}}

	first, err := models.NewOrder(customer, restaurant.ID, items)
	require.NoError(t, err)
	require.NoError(t, orders.Create(first))

	second, err := models.NewOrder(customer, restaurant.ID, items)
	require.NoError(t, err)
	require.NoError(t, orders.Create(second))
	_, err = orders.Cancel(second.ID)
	require.NoError(t, err)

	foreign, err := models.NewOrder(customer, other.ID, items)
	require.NoError(t, err)
	require.NoError(t, orders.Create(foreign))

	listed, err := orders.ListProcessedForRestaurant(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, models.StatusProcessed, listed[0].Status)
}
