package battlenet

// API response shapes, limited to the fields the adapters consume.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type itemResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Level            int    `json:"level"`
	PurchasePrice    int64  `json:"purchase_price"`
	PurchaseQuantity int64  `json:"purchase_quantity"`
	Description      string `json:"description"`
}

type itemSearchResponse struct {
	Results []struct {
		Data struct {
			ID    int64 `json:"id"`
			Name  localizedName
			Level int `json:"level"`
		} `json:"data"`
	} `json:"results"`
}

type localizedName struct {
	EnUS string `json:"en_US"`
}

type recipeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Reagents []struct {
		Reagent struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"reagent"`
		Quantity int64 `json:"quantity"`
	} `json:"reagents"`
	CraftedQuantity struct {
		Value   float64 `json:"value"`
		Minimum float64 `json:"minimum"`
		Maximum float64 `json:"maximum"`
	} `json:"crafted_quantity"`
}

type recipeSearchResponse struct {
	Results []struct {
		Data struct {
			ID         int64 `json:"id"`
			Profession struct {
				ID   int64 `json:"id"`
				Name localizedName
			} `json:"profession"`
		} `json:"data"`
	} `json:"results"`
}

type realmSearchResponse struct {
	Results []struct {
		Data struct {
			ID     int64 `json:"id"`
			Realms []struct {
				Slug string `json:"slug"`
			} `json:"realms"`
		} `json:"data"`
	} `json:"results"`
}
