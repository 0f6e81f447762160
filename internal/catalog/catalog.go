// Package catalog holds the static shop configuration: the groomed-in list
// of services, pet types and sizes, bookable time slots, and shop metadata.
// The ids and labels here are part of the durable store contract.
package catalog

type ServiceIcon int

const (
	IconDroplets ServiceIcon = iota
	IconScissors
	IconSparkles
	IconHand
	IconEar
	IconSmile
	IconShield
)

func (i ServiceIcon) String() string {
	switch i {
	case IconDroplets:
		return "droplets"
	case IconScissors:
		return "scissors"
	case IconSparkles:
		return "sparkles"
	case IconHand:
		return "hand"
	case IconEar:
		return "ear"
	case IconSmile:
		return "smile"
	case IconShield:
		return "shield"
	}
	return "unknown"
}

type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	BasePrice   int         `json:"price"` // whole rupees
	Duration    string      `json:"duration"`
	Icon        ServiceIcon `json:"-"`
	Features    []string    `json:"features,omitempty"`
	IsAddon     bool        `json:"is_addon,omitempty"`
}

type PetType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PetSize struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type WorkingHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

type ShopConfig struct {
	Name         string       `json:"name"`
	Tagline      string       `json:"tagline"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Address      string       `json:"address"`
	WorkingHours WorkingHours `json:"working_hours"`
	MapURL       string       `json:"map_url"`
}

var Shop = ShopConfig{
	Name:    "DogStudio",
	Tagline: "Where Every Pet Gets the Royal Treatment",
	Phone:   "+91 98765 43210",
	Email:   "pratishchandran7@gmail.com",
	Address: "123, Pet Paradise Lane, Koramangala, Bangalore - 560034",
	WorkingHours: WorkingHours{
		Weekdays: "9:00 AM - 7:00 PM",
		Saturday: "9:00 AM - 6:00 PM",
		Sunday:   "10:00 AM - 4:00 PM",
	},
	MapURL: "https://maps.google.com/?q=Koramangala,Bangalore",
}

var spaFeatures = []string{
	"Bath with Shampoo & Conditioner",
	"Blow Dry",
	"Nail Clipping",
	"Ear Cleaning",
	"Paw Massage",
	"Combing/Brushing",
	"Mouth Spray",
}

var Services = []Service{
	{
		ID:          "bath",
		Name:        "Bath & Dry",
		Description: "Complete bathing with premium shampoo and blow dry",
		BasePrice:   699,
		Duration:    "45 mins",
		Icon:        IconDroplets,
	},
	{
		ID:          "haircut",
		Name:        "Face correction",
		Description: "Professional haircut and breed-specific styling",
		BasePrice:   600,
		Duration:    "60 mins",
		Icon:        IconScissors,
	},
	{
		ID:          "full-grooming",
		Name:        "Full Grooming Package",
		Description: "Bath, haircut, nail trim, ear cleaning & teeth brushing",
		BasePrice:   1699,
		Duration:    "90 mins",
		Icon:        IconSparkles,
	},
	{
		ID:          "nail-trim",
		Name:        "Nail Trimming",
		Description: "Safe and precise nail trimming",
		BasePrice:   200,
		Duration:    "15 mins",
		Icon:        IconHand,
	},
	{
		ID:          "ear-cleaning",
		Name:        "Ear Cleaning",
		Description: "Gentle ear cleaning and inspection",
		BasePrice:   200,
		Duration:    "20 mins",
		Icon:        IconEar,
	},
	{
		ID:          "teeth-cleaning",
		Name:        "Teeth Brushing",
		Description: "Dental hygiene care with pet-safe products",
		BasePrice:   300,
		Duration:    "15 mins",
		Icon:        IconSmile,
	},
	{
		ID:          "spa-bath-puppy",
		Name:        "Spa Bath - Puppy",
		Description: "Complete spa package for puppies",
		BasePrice:   1099,
		Duration:    "60 mins",
		Icon:        IconSparkles,
		Features:    spaFeatures,
	},
	{
		ID:          "spa-bath-adult",
		Name:        "Spa Bath - Adult",
		Description: "Complete spa package for adult pets",
		BasePrice:   1399,
		Duration:    "90 mins",
		Icon:        IconSparkles,
		Features:    spaFeatures,
	},
	{
		ID:          "tick-treatment",
		Name:        "Tick Treatment",
		Description: "Professional tick removal and treatment",
		BasePrice:   600,
		Duration:    "30 mins",
		Icon:        IconShield,
		IsAddon:     true,
	},
	{
		ID:          "dematting",
		Name:        "Dematting",
		Description: "Careful removal of mats and tangles from fur",
		BasePrice:   500,
		Duration:    "45 mins",
		Icon:        IconScissors,
		IsAddon:     true,
	},
}

var PetTypes = []PetType{
	{ID: "dog", Name: "Dog"},
	{ID: "cat", Name: "Cat"},
}

var PetSizes = []PetSize{
	{ID: "small", Name: "Small (Under 10kg)", Multiplier: 1},
	{ID: "medium", Name: "Medium (10-25kg)", Multiplier: 1.3},
	{ID: "large", Name: "Large (Over 25kg)", Multiplier: 1.6},
}

var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

// ServiceByID returns the service with the given id, or nil.
func ServiceByID(id string) *Service {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}

// PetSizeByID returns the pet size with the given id, or nil.
func PetSizeByID(id string) *PetSize {
	for i := range PetSizes {
		if PetSizes[i].ID == id {
			return &PetSizes[i]
		}
	}
	return nil
}

// PetTypeByID returns the pet type with the given id, or nil.
func PetTypeByID(id string) *PetType {
	for i := range PetTypes {
		if PetTypes[i].ID == id {
			return &PetTypes[i]
		}
	}
	return nil
}

// ValidTimeSlot reports whether slot is one of the fixed bookable labels.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
