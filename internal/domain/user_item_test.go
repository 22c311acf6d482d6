package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToItem(t *testing.T) {
	u := User{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Address:  &Address{Street: "Kulas Light", City: "Gwenborough", Zipcode: "92998-3874"},
		Company:  &Company{Name: "Romaguera-Crona"},
	}

	item := u.ToItem()
	assert.Equal(t, UserItem{
		ID:       1,
		Name:     "Leanne Graham",
		UserName: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Address:  "Kulas Light\n92998-3874, Gwenborough",
		Company:  "Romaguera-Crona",
	}, item)
}

func TestToItemMissingOptionals(t *testing.T) {
	item := User{ID: 2, Name: "Bob"}.ToItem()
	assert.Equal(t, UserItem{ID: 2, Name: "Bob"}, item)
}

func TestToItemsKeepsOrder(t *testing.T) {
	items := ToItems([]User{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}})
	assert.Len(t, items, 2)
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
	assert.Empty(t, ToItems(nil))
}
