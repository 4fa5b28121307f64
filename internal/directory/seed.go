package directory

import "github.com/foodiesbnb/foodiesbnb-api/internal/models"

// seedCatalog is the fixed set of launch restaurants. It is read-only: the
// synchronizer merges it with owner-authored records but never writes it.
var seedCatalog = []models.Restaurant{
	{
		ID:             "1",
		Name:           "La Taquería Mexicana",
		Cuisine:        "Mexicana",
		Location:       "Calle Principal 123, Madrid",
		Rating:         4.5,
		ReviewCount:    128,
		Image:          "https://images.pexels.com/photos/4079520/pexels-photo-4079520.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Auténtica comida mexicana con ingredientes frescos y sabores tradicionales.",
		PriceRange:     "$15-25",
		OpenHours:      "12:00 - 00:00",
		Benefits:       []string{"Ofertas exclusivas para Foodies", "Contenido para redes sociales", "Descuentos especiales"},
		AvailableSlots: []string{"12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00"},
	},
	{
		ID:             "2",
		Name:           "Sushi Sakura",
		Cuisine:        "Japonesa",
		Location:       "Av. Central 45, Barcelona",
		Rating:         4.8,
		ReviewCount:    93,
		Image:          "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Sushi fresco preparado por chefs japoneses con técnicas tradicionales.",
		PriceRange:     "$30-50",
		OpenHours:      "18:00 - 23:00",
		Benefits:       []string{"Experiencia exclusiva de chef", "Fotos profesionales", "Platos de degustación gratuitos"},
		AvailableSlots: []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30"},
	},
	{
		ID:             "3",
		Name:           "Pasta Bella",
		Cuisine:        "Italiana",
		Location:       "Plaza Mayor 8, Valencia",
		Rating:         4.3,
		ReviewCount:    75,
		Image:          "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Pasta artesanal italiana con salsas caseras y ingredientes importados.",
		PriceRange:     "$18-28",
		OpenHours:      "12:00 - 15:00, 19:00 - 23:00",
		Benefits:       []string{"Clase de cocina gratuita", "Descuento del 20%", "Postre de cortesía"},
		AvailableSlots: []string{"12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00"},
	},
	{
		ID:             "4",
		Name:           "El Jardín Mediterráneo",
		Cuisine:        "Mediterránea",
		Location:       "Calle del Mar 67, Valencia",
		Rating:         4.6,
		ReviewCount:    156,
		Image:          "https://images.pexels.com/photos/1566837/pexels-photo-1566837.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Cocina mediterránea con productos locales y vista al mar.",
		PriceRange:     "$25-40",
		OpenHours:      "13:00 - 16:00, 20:00 - 24:00",
		Benefits:       []string{"Mesa con vista al mar", "Cata de vinos gratuita", "Menú degustación especial"},
		AvailableSlots: []string{"13:00", "14:00", "15:00", "20:00", "21:00", "22:00", "23:00"},
	},
	{
		ID:             "5",
		Name:           "Fusión Creativa",
		Cuisine:        "Fusión",
		Location:       "Barrio Gótico 234, Barcelona",
		Rating:         4.4,
		ReviewCount:    89,
		Image:          "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Cocina de fusión innovadora que combina sabores de todo el mundo.",
		PriceRange:     "$35-55",
		OpenHours:      "19:00 - 01:00",
		Benefits:       []string{"Cocktails de autor gratuitos", "Acceso al chef", "Experiencia gastronómica única"},
		AvailableSlots: []string{"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00"},
	},
	{
		ID:             "6",
		Name:           "Tapas del Abuelo",
		Cuisine:        "Española",
		Location:       "Calle Cervantes 45, Madrid",
		Rating:         4.2,
		ReviewCount:    203,
		Image:          "https://images.pexels.com/photos/1487511/pexels-photo-1487511.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description:    "Tapas tradicionales españolas en un ambiente acogedor y familiar.",
		PriceRange:     "$10-20",
		OpenHours:      "11:00 - 02:00",
		Benefits:       []string{"Tapas ilimitadas por 2 horas", "Sangría de cortesía", "Ambiente tradicional auténtico"},
		AvailableSlots: []string{"11:00", "12:00", "13:00", "14:00", "19:00", "20:00", "21:00", "22:00", "23:00"},
	},
}

// defaultSlots is offered when a restaurant has no slot list of its own.
var defaultSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}
