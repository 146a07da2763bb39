// Package pages разбирает конфигурационные блобы, которые админка хранит
// в сторе текстов страниц (home_admin, docs_config и т.п.). Значения там
// редактируются руками, поэтому разбор всегда с запасом: битый или пустой
// JSON даёт зашитые в код дефолты, а не ошибку рендера.
package pages

import "encoding/json"

// HomeBlocks — флаги видимости блоков главной страницы
type HomeBlocks struct {
	Hero       bool `json:"hero"`
	HeroForm   bool `json:"heroForm"`
	Services   bool `json:"services"`
	About      bool `json:"about"`
	HowItWorks bool `json:"howItWorks"`
	Contacts   bool `json:"contacts"`
}

// HomeTexts — редактируемые тексты главной страницы
type HomeTexts struct {
	HeroSubtitle     string `json:"heroSubtitle"`
	ServicesTitle    string `json:"servicesTitle"`
	ServicesSubtitle string `json:"servicesSubtitle"`
	AboutTitle       string `json:"aboutTitle"`
	AboutText        string `json:"aboutText"`
	HowTitle         string `json:"howTitle"`
	ContactsCta      string `json:"contactsCta"`
}

// HomeImages — фоновые изображения блоков главной
type HomeImages struct {
	HeroBg  string `json:"heroBg,omitempty"`
	AboutBg string `json:"aboutBg,omitempty"`
}

// HomeServiceItem — карточка услуги в блоке «Наши услуги» на главной
type HomeServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// HomeConfig — конфигурация главной страницы целиком
type HomeConfig struct {
	Blocks   HomeBlocks        `json:"blocks"`
	Texts    HomeTexts         `json:"texts"`
	Images   HomeImages        `json:"images"`
	Services []HomeServiceItem `json:"services"`
}

// HomeConfigKey — ключ конфигурации главной в сторе текстов
const HomeConfigKey = "home_admin"

// DefaultHomeConfig возвращает конфигурацию главной по умолчанию
func DefaultHomeConfig() HomeConfig {
	return HomeConfig{
		Blocks: HomeBlocks{
			Hero:       true,
			HeroForm:   true,
			Services:   true,
			About:      true,
			HowItWorks: true,
			Contacts:   true,
		},
		Texts: HomeTexts{
			HeroSubtitle:     "Профессиональный подбор рабочего персонала для строительных объектов, складов, монтажных и промышленных работ",
			ServicesTitle:    "Наши услуги",
			ServicesSubtitle: "Подберем рабочий персонал под вашу задачу: от разнорабочих до узкопрофильных специалистов",
			AboutTitle:       "О компании",
			AboutText:        "Мы предоставляем рабочий персонал, который умеет работать в темпе, соблюдает технику безопасности и выполняет задачи без лишних вопросов.",
			HowTitle:         "Как мы работаем",
			ContactsCta:      "Оставьте заявку, и мы свяжемся с вами в ближайшее время",
		},
		Images: HomeImages{
			HeroBg:  "https://images.unsplash.com/photo-1504307651254-35680f356dfd?auto=format&fit=crop&w=2070&q=80",
			AboutBg: "https://images.unsplash.com/photo-1504307651254-35680f356dfd?auto=format&fit=crop&w=2070&q=80",
		},
		Services: []HomeServiceItem{
			{
				ID:          "warehouse",
				Title:       "Складские работы",
				Description: "Персонал для складских операций: грузчики, комплектовщики, фасовщики и другие сотрудники.",
				Link:        "/services/warehouse",
			},
			{
				ID:          "production",
				Title:       "Производство",
				Description: "Рабочий персонал для производственных линий и цехов.",
				Link:        "/services/production",
			},
			{
				ID:          "construction",
				Title:       "Строительные работы",
				Description: "Персонал для строительных объектов: от разнорабочих до узких специалистов.",
				Link:        "/services/construction",
			},
			{
				ID:          "cleaning",
				Title:       "Клининг и уборка",
				Description: "Уборка территорий, нежилых помещений, снега и строительного мусора.",
				Link:        "/services/cleaning",
			},
			{
				ID:          "earthworks",
				Title:       "Земляные работы",
				Description: "Бригады для земляных работ, траншей, котлованов и подготовки территории.",
				Link:        "/services/earthworks",
			},
		},
	}
}

// rawHomeConfig — промежуточная структура разбора: указатели отличают
// отсутствующие секции от заполненных
type rawHomeConfig struct {
	Blocks   *HomeBlocks        `json:"blocks"`
	Texts    *rawHomeTexts      `json:"texts"`
	Images   *HomeImages        `json:"images"`
	Services *[]HomeServiceItem `json:"services"`
}

type rawHomeTexts struct {
	HeroSubtitle     *string `json:"heroSubtitle"`
	ServicesTitle    *string `json:"servicesTitle"`
	ServicesSubtitle *string `json:"servicesSubtitle"`
	AboutTitle       *string `json:"aboutTitle"`
	AboutText        *string `json:"aboutText"`
	HowTitle         *string `json:"howTitle"`
	ContactsCta      *string `json:"contactsCta"`
}

// ParseHomeConfig разбирает сохранённую конфигурацию главной.
// Отсутствующие секции и поля добиваются дефолтами, битый JSON
// целиком заменяется дефолтной конфигурацией.
func ParseHomeConfig(raw string) HomeConfig {
	cfg := DefaultHomeConfig()
	if raw == "" {
		return cfg
	}

	var parsed rawHomeConfig
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cfg
	}

	if parsed.Blocks != nil {
		cfg.Blocks = *parsed.Blocks
	}
	if parsed.Texts != nil {
		applyText := func(dst *string, src *string) {
			if src != nil && *src != "" {
				*dst = *src
			}
		}
		applyText(&cfg.Texts.HeroSubtitle, parsed.Texts.HeroSubtitle)
		applyText(&cfg.Texts.ServicesTitle, parsed.Texts.ServicesTitle)
		applyText(&cfg.Texts.ServicesSubtitle, parsed.Texts.ServicesSubtitle)
		applyText(&cfg.Texts.AboutTitle, parsed.Texts.AboutTitle)
		applyText(&cfg.Texts.AboutText, parsed.Texts.AboutText)
		applyText(&cfg.Texts.HowTitle, parsed.Texts.HowTitle)
		applyText(&cfg.Texts.ContactsCta, parsed.Texts.ContactsCta)
	}
	if parsed.Images != nil {
		if parsed.Images.HeroBg != "" {
			cfg.Images.HeroBg = parsed.Images.HeroBg
		}
		if parsed.Images.AboutBg != "" {
			cfg.Images.AboutBg = parsed.Images.AboutBg
		}
	}
	if parsed.Services != nil {
		cfg.Services = *parsed.Services
	}
	return cfg
}

// ConsentConfig — настройка чекбокса согласия в формах.
// Хранится внутри docs_config.
type ConsentConfig struct {
	ConsentEnabled     bool   `json:"consentEnabled"`
	ConsentLabelPrefix string `json:"consentLabelPrefix"`
	ConsentLinkText    string `json:"consentLinkText"`
	ConsentLinkHref    string `json:"consentLinkHref"`
}

// DocsConfigKey — ключ конфигурации юридических документов в сторе текстов
const DocsConfigKey = "docs_config"

// DefaultConsentConfig возвращает настройку согласия по умолчанию
func DefaultConsentConfig() ConsentConfig {
	return ConsentConfig{
		ConsentEnabled:     true,
		ConsentLabelPrefix: "Я соглашаюсь на обработку персональных данных и принимаю",
		ConsentLinkText:    "политику конфиденциальности",
		ConsentLinkHref:    "/privacy",
	}
}

// ParseConsentConfig разбирает настройку согласия из docs_config
func ParseConsentConfig(raw string) ConsentConfig {
	cfg := DefaultConsentConfig()
	if raw == "" {
		return cfg
	}

	var parsed struct {
		ConsentEnabled     *bool   `json:"consentEnabled"`
		ConsentLabelPrefix *string `json:"consentLabelPrefix"`
		ConsentLinkText    *string `json:"consentLinkText"`
		ConsentLinkHref    *string `json:"consentLinkHref"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cfg
	}

	if parsed.ConsentEnabled != nil {
		cfg.ConsentEnabled = *parsed.ConsentEnabled
	}
	if parsed.ConsentLabelPrefix != nil && *parsed.ConsentLabelPrefix != "" {
		cfg.ConsentLabelPrefix = *parsed.ConsentLabelPrefix
	}
	if parsed.ConsentLinkText != nil && *parsed.ConsentLinkText != "" {
		cfg.ConsentLinkText = *parsed.ConsentLinkText
	}
	if parsed.ConsentLinkHref != nil && *parsed.ConsentLinkHref != "" {
		cfg.ConsentLinkHref = *parsed.ConsentLinkHref
	}
	return cfg
}

// GlobalContacts — контакты компании, показываются в шапке и подвале
type GlobalContacts struct {
	PhoneNumber  string `json:"phoneNumber"`
	TelegramLink string `json:"telegramLink"`
	WhatsappLink string `json:"whatsappLink"`
	Email        string `json:"email"`
}

// ContactsConfigKey — ключ контактов в сторе текстов
const ContactsConfigKey = "contacts_config"

// DefaultGlobalContacts возвращает контакты по умолчанию
func DefaultGlobalContacts() GlobalContacts {
	return GlobalContacts{
		PhoneNumber:  "+7 (495) 123-45-67",
		TelegramLink: "https://t.me/your_telegram",
		WhatsappLink: "https://wa.me/79951234567",
		Email:        "info@heavyprofile.ru",
	}
}

// ParseGlobalContacts разбирает контакты из contacts_config
func ParseGlobalContacts(raw string) GlobalContacts {
	cfg := DefaultGlobalContacts()
	if raw == "" {
		return cfg
	}

	var parsed struct {
		PhoneNumber  *string `json:"phoneNumber"`
		TelegramLink *string `json:"telegramLink"`
		WhatsappLink *string `json:"whatsappLink"`
		Email        *string `json:"email"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cfg
	}

	if parsed.PhoneNumber != nil && *parsed.PhoneNumber != "" {
		cfg.PhoneNumber = *parsed.PhoneNumber
	}
	if parsed.TelegramLink != nil && *parsed.TelegramLink != "" {
		cfg.TelegramLink = *parsed.TelegramLink
	}
	if parsed.WhatsappLink != nil && *parsed.WhatsappLink != "" {
		cfg.WhatsappLink = *parsed.WhatsappLink
	}
	if parsed.Email != nil && *parsed.Email != "" {
		cfg.Email = *parsed.Email
	}
	return cfg
}
