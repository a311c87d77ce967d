package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/pkg/log"
	"github.com/pribylovaa/go-local-blog/internal/pkg/redact"
)

var (
	accountPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterInput — поля формы регистрации.
type RegisterInput struct {
	Nickname        string
	Account         string
	Email           string
	Password        string
	ConfirmPassword string
	Avatar          string
}

// Register регистрирует новую учётную запись.
//
// Проверки выполняются строго по порядку, до первой ошибки, без мутаций
// (порядок — часть наблюдаемого контракта: он определяет, какую из ошибок
// получит форма с несколькими некорректными полями):
//  1. все шесть полей непустые (ErrIncompleteFields);
//  2. логин 6–20 символов (ErrAccountLength) из [A-Za-z0-9_] (ErrAccountCharset);
//  3. логин свободен (ErrAccountTaken);
//  4. e-mail соответствует формату (ErrInvalidEmail);
//  5. e-mail свободен (ErrEmailTaken);
//  6. пароль не короче минимума (ErrShortPassword);
//  7. пароль совпадает с подтверждением (ErrPasswordMismatch).
//
// Успех: новая запись с ролью user и ID из миллисекунд текущего времени
// добавляется в набор, и набор персистится целиком.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	const op = "service.auth.Register"

	lg := log.From(ctx)

	if in.Nickname == "" || in.Account == "" || in.Email == "" ||
		in.Password == "" || in.ConfirmPassword == "" || in.Avatar == "" {
		return fmt.Errorf("%s: %w", op, ErrIncompleteFields)
	}

	if n := len([]rune(in.Account)); n < s.cfg.Auth.AccountMinLen || n > s.cfg.Auth.AccountMaxLen {
		return fmt.Errorf("%s: %w", op, ErrAccountLength)
	}

	if !accountPattern.MatchString(in.Account) {
		return fmt.Errorf("%s: %w", op, ErrAccountCharset)
	}

	if s.AccountExists(in.Account) {
		return fmt.Errorf("%s: %w", op, ErrAccountTaken)
	}

	if !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if s.EmailExists(in.Email) {
		return fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	if len([]rune(in.Password)) < s.cfg.Auth.PasswordMinLen {
		return fmt.Errorf("%s: %w", op, ErrShortPassword)
	}

	if in.Password != in.ConfirmPassword {
		return fmt.Errorf("%s: %w", op, ErrPasswordMismatch)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()

	account := models.Account{
		ID:           s.nextID(now),
		Nickname:     in.Nickname,
		Handle:       in.Account,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       in.Avatar,
		CreatedAt:    now,
		Role:         models.RoleUser,
	}

	accounts := append(s.accounts, account)
	if err := s.storage.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.accounts = accounts

	lg.Info("account_registered",
		slog.String("op", op),
		slog.Int64("id", account.ID),
		slog.String("account", account.Handle),
		slog.String("email", redact.Email(account.Email)),
	)

	return nil
}

// Login выполняет вход по логину и паролю.
//
// Отказы различимы: ErrMissingCredentials (пустое поле), ErrAccountNotFound
// (нет такого логина), ErrWrongPassword (пароль не подошёл). Успех строит
// сессию без пароля, персистит её как текущую и возвращает.
func (s *Service) Login(ctx context.Context, account, password string) (*models.Session, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	if account == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingCredentials)
	}

	acc := s.accountByHandle(account)
	if acc == nil {
		lg.Warn("login_unknown_account",
			slog.String("op", op),
			slog.String("account", account),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
	}

	if !checkPassword(acc.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("account", account),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}

	session := acc.Session()
	if err := s.storage.SaveSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.session = &session

	lg.Info("login_ok",
		slog.String("op", op),
		slog.Int64("id", session.ID),
		slog.String("account", session.Handle),
	)

	return &session, nil
}

// Logout удаляет текущую сессию. Отсутствие сессии не является ошибкой:
// повторный выход — no-op.
func (s *Service) Logout(ctx context.Context) error {
	const op = "service.auth.Logout"

	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.session = nil

	return nil
}

// IsLoggedIn сообщает, есть ли текущая сессия. Ответ даётся по in-memory
// копии, снятой при создании Service и обновляемой Login/Logout,
// без обращения к хранилищу.
func (s *Service) IsLoggedIn() bool {
	return s.session != nil
}

// CurrentSession возвращает текущую сессию или nil.
func (s *Service) CurrentSession() *models.Session {
	return s.session
}

// AccountExists сообщает, занят ли логин (линейный проход по набору).
func (s *Service) AccountExists(handle string) bool {
	return s.accountByHandle(handle) != nil
}

// EmailExists сообщает, занят ли e-mail (линейный проход по набору).
func (s *Service) EmailExists(email string) bool {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return true
		}
	}

	return false
}

func (s *Service) accountByHandle(handle string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].Handle == handle {
			return &s.accounts[i]
		}
	}

	return nil
}

// nextID выдаёт идентификатор из миллисекунд момента создания.
// Две регистрации в одну миллисекунду получают соседние значения:
// идентификатор обязан быть уникальным и монотонным.
func (s *Service) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return id
}

// hashPassword хэширует пароль с помощью bcrypt.
// Исходная система хранила пароли в открытом виде — здесь это исправлено:
// в хранилище попадает только хэш, сравнение константно по времени.
func (s *Service) hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	cost := s.cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
