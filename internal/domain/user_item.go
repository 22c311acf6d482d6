package domain

// UserItem 列表展示用的扁平结构，缺失字段一律为空串
type UserItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Company  string `json:"company"`
}

func (u User) ToItem() UserItem {
	item := UserItem{
		ID:       u.ID,
		Name:     u.Name,
		UserName: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
	if u.Address != nil {
		item.Address = u.Address.Street + "\n" + u.Address.Zipcode + ", " + u.Address.City
	}
	if u.Company != nil {
		item.Company = u.Company.Name
	}
	return item
}

func ToItems(users []User) []UserItem {
	out := make([]UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToItem())
	}
	return out
}
