// config предоставляет структуру конфигурации приложения и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация приложения.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Storage StorageConfig `yaml:"storage"`
	Pager   PagerConfig   `yaml:"pager"`
	Auth    AuthConfig    `yaml:"auth"`
}

// StorageConfig — настройки локального хранилища.
type StorageConfig struct {
	// Path — каталог базы BadgerDB.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"./blog-data"`
}

// PagerConfig — параметры постраничной выдачи статей.
type PagerConfig struct {
	// PageSize — количество статей на странице.
	PageSize int `yaml:"page_size" env:"PAGE_SIZE" env-default:"6"`
	// WindowSize — максимум номеров страниц в окне навигации.
	WindowSize int `yaml:"window_size" env:"WINDOW_SIZE" env-default:"5"`
	// TopCount — размер рейтинга «топ по просмотрам».
	TopCount int `yaml:"top_count" env:"TOP_COUNT" env-default:"5"`
}

// AuthConfig — политика валидации учётных записей.
type AuthConfig struct {
	// AccountMinLen/AccountMaxLen — границы длины логина.
	AccountMinLen int `yaml:"account_min_len" env:"ACCOUNT_MIN_LEN" env-default:"6"`
	AccountMaxLen int `yaml:"account_max_len" env:"ACCOUNT_MAX_LEN" env-default:"20"`
	// PasswordMinLen — минимальная длина пароля.
	PasswordMinLen int `yaml:"password_min_len" env:"PASSWORD_MIN_LEN" env-default:"6"`
	// BcryptCost — стоимость bcrypt-хэширования (0 — bcrypt.DefaultCost).
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
