package catalog

// Базовый каталог. Задаётся в коде и не меняется в рантайме:
// все правки контента идут через ServiceOverride из админки.

var categories = []Category{
	{
		ID:          "warehouse",
		Slug:        "warehouse",
		Name:        "Склад",
		Description: "Персонал для складских операций",
	},
	{
		ID:          "production",
		Slug:        "production",
		Name:        "Производство",
		Description: "Персонал для производственных линий",
	},
	{
		ID:          "construction",
		Slug:        "construction",
		Name:        "Стройка",
		Description: "Строительный персонал",
	},
	{
		ID:          "cleaning",
		Slug:        "cleaning",
		Name:        "Уборка",
		Description: "Услуги по уборке территорий и помещений",
	},
	{
		ID:          "earthworks",
		Slug:        "earthworks",
		Name:        "Земляные работы",
		Description: "Специалисты по земляным работам",
	},
}

var services = []Service{
	// Склад
	{
		ID:              "warehouse-staff",
		Slug:            "personnel-na-sklad",
		Title:           "Персонал на склад",
		Description:     "Профессиональный складской персонал для различных операций",
		CategoryID:      "warehouse",
		FullDescription: "Предоставляем квалифицированный персонал для работы на складе. Наши сотрудники имеют опыт работы с различными типами грузов и складского оборудования.",
		SeoText:         "Аренда персонала для склада в Москве. Квалифицированные складские работники с опытом работы. Быстрое предоставление персонала для складских операций.",
		PricingTable: []PriceRow{
			{Name: "Грузчик", Price: "от 1500", Unit: "руб/смена"},
			{Name: "Комплектовщик", Price: "от 1800", Unit: "руб/смена"},
			{Name: "Кладовщик", Price: "от 2000", Unit: "руб/смена"},
		},
	},
	{
		ID:              "packers",
		Slug:            "fasovshchiki",
		Title:           "Фасовщики",
		Description:     "Специалисты по фасовке товаров",
		CategoryID:      "warehouse",
		FullDescription: "Опытные фасовщики для упаковки и фасовки различных товаров. Работаем с продуктами питания, строительными материалами, товарами народного потребления.",
		SeoText:         "Услуги фасовщиков в Москве. Профессиональная фасовка товаров любой сложности. Быстрое предоставление персонала.",
	},
	{
		ID:              "labelers",
		Slug:            "markirovshchiki",
		Title:           "Маркировщики",
		Description:     "Специалисты по маркировке товаров",
		CategoryID:      "warehouse",
		FullDescription: "Квалифицированные маркировщики для нанесения этикеток, штрих-кодов и другой маркировки на товары.",
		SeoText:         "Маркировщики товаров в Москве. Профессиональная маркировка с соблюдением всех стандартов.",
	},
	{
		ID:              "stickers",
		Slug:            "stikerovshchiki",
		Title:           "Стикеровщики",
		Description:     "Специалисты по наклейке стикеров и этикеток",
		CategoryID:      "warehouse",
		FullDescription: "Опытные стикеровщики для наклейки этикеток, стикеров и другой маркировки на упаковку и товары.",
		SeoText:         "Услуги стикеровщиков в Москве. Быстрая и качественная наклейка этикеток.",
	},
	{
		ID:              "packaging",
		Slug:            "upakovshchiki",
		Title:           "Упаковщики",
		Description:     "Специалисты по упаковке товаров",
		CategoryID:      "warehouse",
		FullDescription: "Профессиональные упаковщики для упаковки товаров различных категорий. Работаем с хрупкими, крупногабаритными и стандартными товарами.",
		SeoText:         "Услуги упаковщиков в Москве. Качественная упаковка товаров любой сложности.",
	},
	{
		ID:              "loaders",
		Slug:            "gruzchiki",
		Title:           "Грузчики",
		Description:     "Грузчики для складских работ",
		CategoryID:      "warehouse",
		FullDescription: "Физически подготовленные грузчики для погрузочно-разгрузочных работ на складе. Работаем с различными типами грузов.",
		SeoText:         "Грузчики на склад в Москве. Профессиональная погрузка и разгрузка товаров.",
		PricingTable: []PriceRow{
			{Name: "Грузчик (8 часов)", Price: "от 1500", Unit: "руб/смена"},
			{Name: "Грузчик (12 часов)", Price: "от 2200", Unit: "руб/смена"},
		},
	},
	{
		ID:              "pickers",
		Slug:            "komplektovshchiki",
		Title:           "Комплектовщики",
		Description:     "Специалисты по комплектации заказов",
		CategoryID:      "warehouse",
		FullDescription: "Опытные комплектовщики для сборки заказов по накладным. Работаем с системами WMS, сканерами и другим складским оборудованием.",
		SeoText:         "Комплектовщики заказов в Москве. Быстрая и точная комплектация товаров.",
	},
	// Производство
	{
		ID:              "production-staff",
		Slug:            "personnel-na-proizvodstvo",
		Title:           "Персонал на производство",
		Description:     "Рабочий персонал для производства",
		CategoryID:      "production",
		FullDescription: "Квалифицированный персонал для работы на производственных линиях. Опыт работы с различными типами оборудования и технологий.",
		SeoText:         "Персонал для производства в Москве. Квалифицированные рабочие для производственных линий.",
	},
	{
		ID:              "production-packaging",
		Slug:            "upakovshchiki-proizvodstvo",
		Title:           "Упаковщики",
		Description:     "Упаковщики для производственных линий",
		CategoryID:      "production",
		FullDescription: "Специалисты по упаковке готовой продукции на производственных линиях.",
		SeoText:         "Упаковщики на производство в Москве.",
	},
	{
		ID:              "production-labelers",
		Slug:            "markirovshchiki-proizvodstvo",
		Title:           "Маркировщики",
		Description:     "Маркировщики для производственных линий",
		CategoryID:      "production",
		FullDescription: "Специалисты по маркировке готовой продукции на производстве.",
		SeoText:         "Маркировщики на производство в Москве.",
	},
	{
		ID:              "production-pickers",
		Slug:            "komplektovshchiki-proizvodstvo",
		Title:           "Комплектовщики",
		Description:     "Комплектовщики для производства",
		CategoryID:      "production",
		FullDescription: "Опытные комплектовщики для сборки и комплектации продукции на производстве.",
		SeoText:         "Комплектовщики на производство в Москве.",
	},
	{
		ID:              "production-packers",
		Slug:            "fasovshchiki-proizvodstvo",
		Title:           "Фасовщики",
		Description:     "Фасовщики для производственных линий",
		CategoryID:      "production",
		FullDescription: "Специалисты по фасовке продукции на производственных линиях.",
		SeoText:         "Фасовщики на производство в Москве.",
	},
	{
		ID:              "production-loading",
		Slug:            "rabochie-na-pogruzku",
		Title:           "Рабочие на погрузку",
		Description:     "Рабочие для погрузки готовой продукции",
		CategoryID:      "production",
		FullDescription: "Физически подготовленные рабочие для погрузки готовой продукции на транспорт.",
		SeoText:         "Рабочие на погрузку продукции в Москве.",
	},
	// Стройка
	{
		ID:              "construction-staff",
		Slug:            "personnel-na-stroyku",
		Title:           "Персонал на стройку",
		Description:     "Строительный персонал",
		CategoryID:      "construction",
		FullDescription: "Квалифицированный строительный персонал для различных видов работ на объектах.",
		SeoText:         "Строительный персонал в Москве. Квалифицированные рабочие для строительных объектов.",
	},
	{
		ID:              "handymen",
		Slug:            "raznorabochie",
		Title:           "Разнорабочие",
		Description:     "Разнорабочие для строительных объектов",
		CategoryID:      "construction",
		FullDescription: "Опытные разнорабочие для выполнения различных строительных задач. Помощь специалистам, подготовка материалов, уборка территории.",
		SeoText:         "Разнорабочие на стройку в Москве. Универсальные рабочие для строительных объектов.",
		PricingTable: []PriceRow{
			{Name: "Разнорабочий (8 часов)", Price: "от 2000", Unit: "руб/смена"},
			{Name: "Разнорабочий (12 часов)", Price: "от 2800", Unit: "руб/смена"},
		},
	},
	{
		ID:              "monolith-workers",
		Slug:            "monolitchiki",
		Title:           "Монолитчики",
		Description:     "Специалисты по монолитным работам",
		CategoryID:      "construction",
		FullDescription: "Опытные монолитчики для заливки бетона, установки опалубки и других монолитных работ.",
		SeoText:         "Монолитчики в Москве. Профессиональные работы по монолитному строительству.",
	},
	{
		ID:              "installers",
		Slug:            "montazhniki",
		Title:           "Монтажники",
		Description:     "Монтажники для строительных работ",
		CategoryID:      "construction",
		FullDescription: "Квалифицированные монтажники для установки различных конструкций, оборудования и систем.",
		SeoText:         "Монтажники в Москве. Профессиональный монтаж конструкций и оборудования.",
	},
	{
		ID:              "finishers",
		Slug:            "otdelochniki",
		Title:           "Отделочники",
		Description:     "Специалисты по отделочным работам",
		CategoryID:      "construction",
		FullDescription: "Опытные отделочники для выполнения внутренних и наружных отделочных работ.",
		SeoText:         "Отделочники в Москве. Качественная отделка помещений и фасадов.",
	},
	{
		ID:              "construction-loaders",
		Slug:            "gruzchiki-stroyka",
		Title:           "Грузчики",
		Description:     "Грузчики для строительных объектов",
		CategoryID:      "construction",
		FullDescription: "Физически подготовленные грузчики для погрузочно-разгрузочных работ на строительных объектах.",
		SeoText:         "Грузчики на стройку в Москве.",
	},
	{
		ID:              "concrete-workers",
		Slug:            "betonshchiki",
		Title:           "Бетонщики",
		Description:     "Специалисты по бетонным работам",
		CategoryID:      "construction",
		FullDescription: "Опытные бетонщики для заливки бетона, укладки арматуры и других бетонных работ.",
		SeoText:         "Бетонщики в Москве. Профессиональные бетонные работы.",
	},
	{
		ID:              "reinforcement-workers",
		Slug:            "armaturshchiki",
		Title:           "Арматурщики",
		Description:     "Специалисты по арматурным работам",
		CategoryID:      "construction",
		FullDescription: "Квалифицированные арматурщики для вязки и установки арматуры.",
		SeoText:         "Арматурщики в Москве. Профессиональная работа с арматурой.",
	},
	{
		ID:              "drywall-workers",
		Slug:            "gipsokartonshchiki",
		Title:           "Гипсокартонщики",
		Description:     "Специалисты по работе с гипсокартоном",
		CategoryID:      "construction",
		FullDescription: "Опытные гипсокартонщики для монтажа перегородок, потолков и других конструкций из гипсокартона.",
		SeoText:         "Гипсокартонщики в Москве. Профессиональный монтаж гипсокартона.",
	},
	{
		ID:              "plasterers",
		Slug:            "shtukatury",
		Title:           "Штукатуры",
		Description:     "Специалисты по штукатурным работам",
		CategoryID:      "construction",
		FullDescription: "Квалифицированные штукатуры для оштукатуривания стен и потолков.",
		SeoText:         "Штукатуры в Москве. Качественная штукатурка поверхностей.",
	},
	{
		ID:              "putty-workers",
		Slug:            "shpaklevshchiki",
		Title:           "Шпаклёвщики",
		Description:     "Специалисты по шпаклёвочным работам",
		CategoryID:      "construction",
		FullDescription: "Опытные шпаклёвщики для выравнивания поверхностей перед финишной отделкой.",
		SeoText:         "Шпаклёвщики в Москве. Профессиональная шпаклёвка поверхностей.",
	},
	// Уборка
	{
		ID:              "territory-cleaning",
		Slug:            "uborka-territoriy",
		Title:           "Уборка территорий",
		Description:     "Уборка прилегающих территорий",
		CategoryID:      "cleaning",
		FullDescription: "Комплексная уборка прилегающих территорий, парковок, дворов и других открытых пространств.",
		SeoText:         "Уборка территорий в Москве. Профессиональная уборка прилегающих территорий.",
	},
	{
		ID:              "leaves-cleaning",
		Slug:            "uborka-listvy",
		Title:           "Уборка листвы",
		Description:     "Сезонная уборка листвы",
		CategoryID:      "cleaning",
		FullDescription: "Уборка опавшей листвы с территорий в осенний период. Используем специализированное оборудование.",
		SeoText:         "Уборка листвы в Москве. Сезонная уборка опавшей листвы.",
	},
	{
		ID:              "non-residential-cleaning",
		Slug:            "uborka-nezhilyh-pomeshcheniy",
		Title:           "Уборка нежилых помещений",
		Description:     "Уборка офисов, складов, производственных помещений",
		CategoryID:      "cleaning",
		FullDescription: "Профессиональная уборка нежилых помещений: офисов, складов, производственных цехов, торговых залов.",
		SeoText:         "Уборка нежилых помещений в Москве. Профессиональная клининговая служба.",
	},
	{
		ID:              "snow-cleaning",
		Slug:            "uborka-snega",
		Title:           "Уборка снега",
		Description:     "Уборка снега с территорий",
		CategoryID:      "cleaning",
		FullDescription: "Уборка снега с территорий, парковок, тротуаров.",
		SeoText:         "Уборка снега в Москве. Уборка снега с территорий.",
		PricingTable: []PriceRow{
			{Name: "Уборка снега (территория)", Price: "от 500", Unit: "руб/м²"},
			{Name: "Срочная уборка", Price: "от 800", Unit: "руб/м²"},
		},
	},
	{
		ID:              "snow-roof-cleaning",
		Slug:            "uborka-snega-s-krysh",
		Title:           "Уборка снега с крыш",
		Description:     "Уборка снега с крыш зданий",
		CategoryID:      "cleaning",
		FullDescription: "Уборка снега с крыш зданий с соблюдением всех мер безопасности.",
		SeoText:         "Уборка снега с крыш в Москве. Безопасная уборка снега с крыш зданий.",
		PricingTable: []PriceRow{
			{Name: "Уборка снега с крыш", Price: "от 1500", Unit: "руб/м²"},
		},
	},
	{
		ID:              "construction-waste-cleaning",
		Slug:            "uborka-stroitelnogo-musora",
		Title:           "Уборка строительного мусора",
		Description:     "Вывоз и уборка строительного мусора",
		CategoryID:      "cleaning",
		FullDescription: "Уборка и вывоз строительного мусора с объектов. Работаем с различными типами отходов строительства.",
		SeoText:         "Уборка строительного мусора в Москве. Вывоз и утилизация строительных отходов.",
	},
	// Земляные работы
	{
		ID:              "earthworks-staff",
		Slug:            "personnel-dlya-zemlyanyh-rabot",
		Title:           "Персонал для земляных работ",
		Description:     "Специалисты по земляным работам",
		CategoryID:      "earthworks",
		FullDescription: "Квалифицированный персонал для выполнения различных земляных работ.",
		SeoText:         "Персонал для земляных работ в Москве.",
	},
	{
		ID:              "excavators",
		Slug:            "zemlekopy",
		Title:           "Землекопы",
		Description:     "Специалисты по копке и земляным работам",
		CategoryID:      "earthworks",
		FullDescription: "Опытные землекопы для выполнения различных земляных работ: копка котлованов, траншей, планировка участков.",
		SeoText:         "Землекопы в Москве. Профессиональные земляные работы любой сложности.",
		PricingTable: []PriceRow{
			{Name: "Землекоп (8 часов)", Price: "от 2500", Unit: "руб/смена"},
			{Name: "Землекоп (12 часов)", Price: "от 3500", Unit: "руб/смена"},
			{Name: "Копка траншеи", Price: "от 800", Unit: "руб/м³"},
		},
	},
	{
		ID:              "foundation-excavation",
		Slug:            "kopka-fundamenta",
		Title:           "Копка фундамента",
		Description:     "Копка котлованов под фундамент",
		CategoryID:      "earthworks",
		FullDescription: "Профессиональная копка котлованов под фундамент с соблюдением всех требований и норм.",
		SeoText:         "Копка фундамента в Москве. Профессиональная копка котлованов под фундамент.",
	},
	{
		ID:              "trench-excavation",
		Slug:            "kopka-transhey",
		Title:           "Копка траншей",
		Description:     "Копка траншей для коммуникаций",
		CategoryID:      "earthworks",
		FullDescription: "Копка траншей для прокладки коммуникаций: водопровод, канализация, электрические кабели, газопровод.",
		SeoText:         "Копка траншей в Москве. Профессиональная копка траншей для коммуникаций.",
	},
}

// Categories возвращает список категорий в порядке объявления
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryBySlug находит категорию по slug (nil, если такой нет)
func CategoryBySlug(slug string) *Category {
	for i := range categories {
		if categories[i].Slug == slug {
			c := categories[i]
			return &c
		}
	}
	return nil
}

// CategoryByID находит категорию по ID (nil, если такой нет)
func CategoryByID(id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			c := categories[i]
			return &c
		}
	}
	return nil
}

// BaseServices возвращает копию базового каталога без учёта правок
func BaseServices() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}
