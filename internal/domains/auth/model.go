package auth

// Admin là domain entity - ánh xạ 1:1 với bảng admin trong DB
// Singleton row: tối đa 1 credential record với id=1
type Admin struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON
}

// AdminID là id cố định của credential row duy nhất
const AdminID int64 = 1
