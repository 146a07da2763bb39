package pages

import "testing"

func TestParseHomeConfig_Empty(t *testing.T) {
	cfg := ParseHomeConfig("")
	def := DefaultHomeConfig()

	if cfg.Texts.ServicesTitle != def.Texts.ServicesTitle {
		t.Errorf("пустое значение должно давать дефолты, получили %q", cfg.Texts.ServicesTitle)
	}
	if !cfg.Blocks.Hero || !cfg.Blocks.Contacts {
		t.Error("по умолчанию все блоки включены")
	}
	if len(cfg.Services) != 5 {
		t.Errorf("ожидали 5 дефолтных карточек услуг, получили %d", len(cfg.Services))
	}
}

func TestParseHomeConfig_MalformedJSON(t *testing.T) {
	for _, raw := range []string{"{broken", "[]", `"строка"`, "42"} {
		cfg := ParseHomeConfig(raw)
		if cfg.Texts.AboutTitle != "О компании" {
			t.Errorf("битый JSON %q должен давать дефолты, получили %q", raw, cfg.Texts.AboutTitle)
		}
	}
}

func TestParseHomeConfig_PartialOverride(t *testing.T) {
	raw := `{"blocks":{"hero":false,"heroForm":true,"services":true,"about":true,"howItWorks":true,"contacts":true},"texts":{"aboutTitle":"Про нас"}}`
	cfg := ParseHomeConfig(raw)

	if cfg.Blocks.Hero {
		t.Error("блок hero должен быть выключен")
	}
	if cfg.Texts.AboutTitle != "Про нас" {
		t.Errorf("текст должен браться из сохранённого, получили %q", cfg.Texts.AboutTitle)
	}
	// Незаполненные тексты остаются дефолтными
	if cfg.Texts.HowTitle != "Как мы работаем" {
		t.Errorf("недостающий текст должен добиваться дефолтом, получили %q", cfg.Texts.HowTitle)
	}
}

func TestParseConsentConfig(t *testing.T) {
	cfg := ParseConsentConfig(`{"consentEnabled":false,"consentLinkText":"оферту"}`)
	if cfg.ConsentEnabled {
		t.Error("флаг согласия должен выключаться")
	}
	if cfg.ConsentLinkText != "оферту" {
		t.Errorf("текст ссылки: %q", cfg.ConsentLinkText)
	}
	if cfg.ConsentLinkHref != "/privacy" {
		t.Errorf("недостающая ссылка должна быть дефолтной: %q", cfg.ConsentLinkHref)
	}

	if broken := ParseConsentConfig("{oops"); !broken.ConsentEnabled {
		t.Error("битый JSON должен давать дефолт с включённым согласием")
	}
}

func TestParseGlobalContacts(t *testing.T) {
	cfg := ParseGlobalContacts(`{"phoneNumber":"+7 (800) 000-00-00","email":""}`)
	if cfg.PhoneNumber != "+7 (800) 000-00-00" {
		t.Errorf("телефон: %q", cfg.PhoneNumber)
	}
	// Пустая строка в сохранённом значении не затирает дефолт
	if cfg.Email != "info@heavyprofile.ru" {
		t.Errorf("email: %q", cfg.Email)
	}
}
