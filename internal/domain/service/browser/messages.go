package browser

import "strings"

// Messages holds every user-facing string the bindings show.
type Messages struct {
	Loading        string
	Searching      string
	LoadError      string
	NoResults      string
	Empty          string
	DetailLoading  string
	DetailError    string
	Close          string
	ViewDetail     string
	OpenStore      string
	LoadMore       string
	PriceLabel     string
	SaleLabel      string
	RetailLabel    string
	OfferLabel     string
	MetacriticName string
	StoreFilter    string
	AllStores      string
	SortBy         string
	SortNames      map[string]string
	Help           string
	SearchUsage    string
	SessionExpired string
}

//nolint:gochecknoglobals // skip
var SpanishMessages = Messages{
	Loading:        "Cargando juegos...",
	Searching:      "Buscando...",
	LoadError:      "Error al cargar datos.",
	NoResults:      "No se encontraron resultados.",
	Empty:          "No hay ofertas disponibles.",
	DetailLoading:  "Cargando detalles...",
	DetailError:    "Error al cargar los detalles.",
	Close:          "Cerrar Ventana",
	ViewDetail:     "Ver detalle",
	OpenStore:      "Ver en la Tienda Oficial",
	LoadMore:       "Cargar más",
	PriceLabel:     "Precio:",
	SaleLabel:      "Oferta:",
	RetailLabel:    "Precio normal:",
	OfferLabel:     "Precio oferta:",
	MetacriticName: "Metacritic:",
	StoreFilter:    "Filtrar por tienda:",
	AllStores:      "Todas las tiendas",
	SortBy:         "Ordenar por:",
	SortNames: map[string]string{
		"none":        "Sin orden",
		"price":       "Precio de oferta",
		"normalPrice": "Precio normal",
	},
	Help: "Ofertas de juegos de CheapShark.\n\n" +
		"/deals ofertas actuales\n" +
		"/search <título> buscar juegos\n" +
		"/store [id] filtrar por tienda\n" +
		"/stores tiendas disponibles\n" +
		"/sort [price|normalPrice|none] ordenar\n" +
		"/more cargar más",
	SearchUsage:    "Uso: /search <título>",
	SessionExpired: "La sesión expiró, usa /deals.",
}

//nolint:gochecknoglobals // skip
var EnglishMessages = Messages{
	Loading:        "Loading games...",
	Searching:      "Searching...",
	LoadError:      "Failed to load data.",
	NoResults:      "No results found.",
	Empty:          "No deals available.",
	DetailLoading:  "Loading details...",
	DetailError:    "Failed to load the details.",
	Close:          "Close",
	ViewDetail:     "View details",
	OpenStore:      "Open in the official store",
	LoadMore:       "Load more",
	PriceLabel:     "Price:",
	SaleLabel:      "Sale:",
	RetailLabel:    "Normal price:",
	OfferLabel:     "Sale price:",
	MetacriticName: "Metacritic:",
	StoreFilter:    "Filter by store:",
	AllStores:      "All stores",
	SortBy:         "Sort by:",
	SortNames: map[string]string{
		"none":        "No sorting",
		"price":       "Sale price",
		"normalPrice": "Normal price",
	},
	Help: "Game deals from CheapShark.\n\n" +
		"/deals current deals\n" +
		"/search <title> search games\n" +
		"/store [id] filter by store\n" +
		"/stores available stores\n" +
		"/sort [price|normalPrice|none] sort\n" +
		"/more load more",
	SearchUsage:    "Usage: /search <title>",
	SessionExpired: "Session expired, send /deals.",
}

// MessagesFor picks the message set for a language tag ("es", "en-US", ...).
// Unknown languages get Spanish.
func MessagesFor(lang string) Messages {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, "en") {
		return EnglishMessages
	}

	return SpanishMessages
}
