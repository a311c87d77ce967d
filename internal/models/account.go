// models содержит доменные сущности блога.
// Эти типы используются слоями бизнес-логики и хранилища; в персистентное
// хранилище они сериализуются как JSON (см. internal/storage/badgerdb).
package models

import "time"

// Роли учётной записи.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account — модель зарегистрированной учётной записи.
//
// Особенности:
//   - ID — миллисекунды момента создания (монотонный в рамках процесса);
//   - Handle уникален среди всех учётных записей, как и Email;
//   - PasswordHash — bcrypt-хэш, исходный пароль никогда не сохраняется;
//   - запись не обновляется и не удаляется после создания.
type Account struct {
	// ID — уникальный идентификатор учётной записи.
	ID int64 `json:"id"`
	// Nickname — отображаемое имя.
	Nickname string `json:"nickname"`
	// Handle — логин (6–20 символов, [A-Za-z0-9_]).
	Handle string `json:"account"`
	// Email — адрес электронной почты.
	Email string `json:"email"`
	// PasswordHash — bcrypt-хэш пароля.
	PasswordHash string `json:"password_hash"`
	// Avatar — ссылка на аватар.
	Avatar string `json:"avatar"`
	// CreatedAt — время регистрации (UTC).
	CreatedAt time.Time `json:"register_time"`
	// Role — роль: user или admin.
	Role string `json:"role"`
}

// Session — текущая аутентифицированная учётная запись: проекция Account
// без учётных данных. В хранилище существует не более одной Session.
type Session struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Handle   string `json:"account"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// Session возвращает проекцию учётной записи без пароля.
func (a Account) Session() Session {
	return Session{
		ID:       a.ID,
		Nickname: a.Nickname,
		Handle:   a.Handle,
		Email:    a.Email,
		Avatar:   a.Avatar,
		Role:     a.Role,
	}
}
