package models

// Default selectable sets for the admin product form. Stored sets under the
// "brands"/"categories" keys extend these.
var (
	DefaultBrands     = []string{"Bosch", "Tecfil", "NGK", "Monroe", "Moura", "Goodyear"}
	DefaultCategories = []string{"Filtros", "Freios", "Ignição", "Suspensão", "Elétrica", "Pneus"}
)

func priceOf(v float64) *float64 { return &v }

// SeedProducts returns a fresh copy of the built-in catalog. It is the
// fallback state whenever no persisted catalog exists or it fails to parse.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Code:        "FLT-001-GM",
			Name:        "Filtro de Óleo Tecfil",
			Brand:       "Tecfil",
			Category:    "Filtros",
			Subcategory: "Filtro de Óleo",
			Description: "Filtro de óleo de alta qualidade para motores GM. Garante excelente filtragem e proteção do motor.",
			Specifications: map[string]string{
				"Rosca":            "M20 x 1,5",
				"Altura":           "95mm",
				"Diâmetro Externo": "76mm",
				"Material":         "Metal e papel filtrante",
				"Capacidade":       "4.5L",
			},
			CompatibleVehicles: []string{
				"Chevrolet Onix 1.0/1.4",
				"Chevrolet Prisma 1.0/1.4",
				"Chevrolet Cobalt 1.4/1.8",
				"Chevrolet Spin 1.8",
			},
			Price:         24.90,
			OriginalPrice: priceOf(32.90),
			Stock:         45,
			Images: []string{
				"https://images.pexels.com/photos/13065690/pexels-photo-13065690.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/3807277/pexels-photo-3807277.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"filtro", "óleo", "GM", "Chevrolet", "manutenção"},
			IsOEM:    false,
			Warranty: "12 meses",
		},
		{
			ID:          "2",
			Code:        "BRK-205-VW",
			Name:        "Pastilha de Freio Dianteira",
			Brand:       "Bosch",
			Category:    "Freios",
			Subcategory: "Pastilhas",
			Description: "Pastilha de freio dianteira original Bosch com tecnologia cerâmica para máxima segurança.",
			Specifications: map[string]string{
				"Comprimento": "155mm",
				"Largura":     "68mm",
				"Espessura":   "17mm",
				"Material":    "Cerâmica",
				"Sensor":      "Não incluso",
			},
			CompatibleVehicles: []string{
				"Volkswagen Gol G5/G6/G7",
				"Volkswagen Voyage",
				"Volkswagen Fox",
				"Volkswagen Up!",
			},
			Price: 89.90,
			Stock: 28,
			Images: []string{
				"https://images.pexels.com/photos/190574/pexels-photo-190574.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/3807277/pexels-photo-3807277.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"pastilha", "freio", "VW", "Volkswagen", "segurança"},
			IsOEM:    true,
			Warranty: "24 meses",
		},
		{
			ID:          "3",
			Code:        "SPK-101-FOR",
			Name:        "Vela de Ignição NGK",
			Brand:       "NGK",
			Category:    "Ignição",
			Subcategory: "Velas",
			Description: "Vela de ignição NGK com eletrodo de irídio para máxima performance e durabilidade.",
			Specifications: map[string]string{
				"Rosca":    "14mm x 1,25",
				"Alcance":  "19mm",
				"Abertura": "0.8mm",
				"Eletrodo": "Irídio",
				"Resistor": "Sim",
			},
			CompatibleVehicles: []string{
				"Ford Ka 1.0/1.5",
				"Ford Fiesta 1.6",
				"Ford EcoSport 1.6",
				"Ford Focus 1.6",
			},
			Price:         35.90,
			OriginalPrice: priceOf(42.90),
			Stock:         67,
			Images: []string{
				"https://images.pexels.com/photos/3807277/pexels-photo-3807277.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/13065690/pexels-photo-13065690.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"vela", "ignição", "Ford", "NGK", "performance"},
			IsOEM:    false,
			Warranty: "18 meses",
		},
		{
			ID:          "4",
			Code:        "AMT-350-HYU",
			Name:        "Amortecedor Traseiro Monroe",
			Brand:       "Monroe",
			Category:    "Suspensão",
			Subcategory: "Amortecedores",
			Description: "Amortecedor traseiro Monroe com tecnologia gas-o-matic para máximo conforto e estabilidade.",
			Specifications: map[string]string{
				"Comprimento Comprimido": "320mm",
				"Comprimento Estendido":  "510mm",
				"Diâmetro do Pistão":     "32mm",
				"Tipo":                   "Gás",
				"Rosca Superior":         "M12",
			},
			CompatibleVehicles: []string{
				"Hyundai HB20 1.0/1.6",
				"Hyundai HB20S 1.0/1.6",
				"Hyundai Creta 1.6/2.0",
			},
			Price: 189.90,
			Stock: 15,
			Images: []string{
				"https://images.pexels.com/photos/190574/pexels-photo-190574.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/3807277/pexels-photo-3807277.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"amortecedor", "suspensão", "Hyundai", "Monroe", "conforto"},
			IsOEM:    false,
			Warranty: "12 meses",
		},
		{
			ID:          "5",
			Code:        "BAT-12V-60A",
			Name:        "Bateria Automotiva Moura",
			Brand:       "Moura",
			Category:    "Elétrica",
			Subcategory: "Baterias",
			Description: "Bateria 12V 60Ah Moura com tecnologia selada e livre de manutenção.",
			Specifications: map[string]string{
				"Voltagem":  "12V",
				"Amperagem": "60Ah",
				"CCA":       "460A",
				"Dimensões": "242x175x190mm",
				"Peso":      "16kg",
			},
			CompatibleVehicles: []string{
				"Volkswagen Gol",
				"Chevrolet Onix",
				"Ford Ka",
				"Fiat Uno",
				"Renault Sandero",
			},
			Price:         289.90,
			OriginalPrice: priceOf(320.00),
			Stock:         8,
			Images: []string{
				"https://images.pexels.com/photos/13065690/pexels-photo-13065690.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/190574/pexels-photo-190574.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"bateria", "elétrica", "Moura", "12V", "60Ah"},
			IsOEM:    false,
			Warranty: "18 meses",
		},
		{
			ID:          "6",
			Code:        "TIR-195-65-15",
			Name:        "Pneu Goodyear Assurance",
			Brand:       "Goodyear",
			Category:    "Pneus",
			Subcategory: "Pneu Passeio",
			Description: "Pneu 195/65 R15 Goodyear Assurance com tecnologia de baixo ruído e alta durabilidade.",
			Specifications: map[string]string{
				"Medida":               "195/65 R15",
				"Índice de Carga":      "91",
				"Índice de Velocidade": "H",
				"Construção":           "Radial",
				"DOT":                  "2024",
			},
			CompatibleVehicles: []string{
				"Honda Civic",
				"Toyota Corolla",
				"Nissan Sentra",
				"Chevrolet Cruze",
			},
			Price: 285.90,
			Stock: 12,
			Images: []string{
				"https://images.pexels.com/photos/3807277/pexels-photo-3807277.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/13065690/pexels-photo-13065690.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Tags:     []string{"pneu", "Goodyear", "195/65", "R15", "passeio"},
			IsOEM:    false,
			Warranty: "5 anos",
		},
	}
}
