package factories

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Arshadali10614941/cafe-system/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

var (
	ErrInvalidItemType = errors.New("invalid menu item type")
	ErrMissingSize     = errors.New("drink items need a size")
)

// CreateMenuItem builds a food or drink catalog entry from its type tag,
// matched case-insensitively. Drinks must carry a size.
func CreateMenuItem(itemType string, id int, name string, price float64, size string) (*models.MenuItem, error) {
	switch strings.ToLower(itemType) {
	case models.ItemTypeFood:
		return &models.MenuItem{ID: id, Name: name, Price: price, Type: models.ItemTypeFood}, nil
	case models.ItemTypeDrink:
		if size == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSize, name)
		}
		return &models.MenuItem{ID: id, Name: name, Price: price, Type: models.ItemTypeDrink, Size: size}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidItemType, itemType)
}

// SeedMenu builds a catalog from config entries via the variant constructor.
func SeedMenu(entries []models.MenuEntry) (*models.Menu, error) {
	menu := models.NewMenu()
	for _, entry := range entries {
		item, err := CreateMenuItem(entry.Type, entry.ID, entry.Name, entry.Price, entry.Size)
		if err != nil {
			return nil, fmt.Errorf("menu entry %d (%s): %w", entry.ID, entry.Name, err)
		}
		menu.Add(item)
	}
	return menu, nil
}

func generateRandomFoodName() string {
	foods := []string{"Chuna Sandwich", "Chicken Wrap", "Turkey Sandwich", "BLT Baguette", "Falafel Box", "Soup of the Day", "Cheese Toastie", "Quiche Slice"}
	return foods[rand.Intn(len(foods))]
}

func generateRandomDrinkName() string {
	drinks := []string{"Latte", "Espresso", "Flat White", "Cappuccino", "Mocha", "Diet Coke", "Water", "Orange Juice"}
	return drinks[rand.Intn(len(drinks))]
}

func generateRandomDrinkSize() string {
	sizes := []string{"Small", "Medium", "Large", "Can", "Bottle"}
	return sizes[rand.Intn(len(sizes))]
}

// RandomMenuItem generates a plausible catalog entry for demo sessions.
func RandomMenuItem(id int) *models.MenuItem {
	if fake.Bool() {
		return &models.MenuItem{
			ID:    id,
			Name:  generateRandomFoodName(),
			Price: fake.Float64(2, 1, 8),
			Type:  models.ItemTypeFood,
		}
	}
	return &models.MenuItem{
		ID:    id,
		Name:  generateRandomDrinkName(),
		Price: fake.Float64(2, 1, 4),
		Type:  models.ItemTypeDrink,
		Size:  generateRandomDrinkSize(),
	}
}

// RandomMenu seeds a catalog of n generated items with ids 1..n.
func RandomMenu(n int) *models.Menu {
	menu := models.NewMenu()
	for id := 1; id <= n; id++ {
		menu.Add(RandomMenuItem(id))
	}
	return menu
}
