package validation

import "regexp"

const MaxNameLength = 30

// Digit and word classes are Unicode-aware: any decimal digit counts as
// numeric, and only characters outside letters, marks, digits and connector
// punctuation (plus the underscore) count as special. Upper and lower stay
// ASCII ranges.
var (
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\p{Nd}{1,14}$`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\p{Nd}`)
	specialPattern = regexp.MustCompile(`_|[^\p{L}\p{Mn}\p{Nd}\p{Pc}]`)
)

func emailRules() []Rule {
	return []Rule{
		Required("Email address is required"),
		Email("Invalid email format"),
	}
}

func nameRules() []Rule {
	return []Rule{
		Required("Name field is required"),
		MaxLength(MaxNameLength, "Name field cannot exceed 30 characters"),
	}
}

func phoneRules() []Rule {
	return []Rule{
		Required("Phone number cannot be empty."),
		Matches(phonePattern, "Invalid phone number format."),
	}
}

func passwordRules() []Rule {
	return []Rule{
		Required("Password cannot be empty."),
		MinLength(8, "Password must be at least 8 characters long."),
		Matches(upperPattern, "Password must contain at least one uppercase letter."),
		Matches(lowerPattern, "Password must contain at least one lowercase letter."),
		Matches(digitPattern, "Password must contain at least one numeric character."),
		Matches(specialPattern, "Password must contain at least one special character."),
	}
}

func Register(email, name, phoneNumber, password string) Result {
	return New().
		Field("Email", email, emailRules()...).
		Field("Name", name, nameRules()...).
		Field("PhoneNumber", phoneNumber, phoneRules()...).
		Field("Password", password, passwordRules()...).
		Result()
}

func Login(email, password string) Result {
	return New().
		Field("Email", email, Required("Email address is required")).
		Field("Password", password, Required("Password cannot be empty.")).
		Result()
}

func GetProfile(email string) Result {
	return New().
		Field("Email", email, Required("Email address is required")).
		Result()
}

func UpdateProfile(name, phoneNumber string) Result {
	return New().
		Field("Name", name, nameRules()...).
		Field("PhoneNumber", phoneNumber, phoneRules()...).
		Result()
}

// ChangePassword checks the confirmation after the new password.
func ChangePassword(oldPassword, newPassword, confirmNewPassword string) Result {
	return New().
		Field("OldPassword", oldPassword, Required("Please input your old password")).
		Field("NewPassword", newPassword, passwordRules()...).
		Field("ConfirmNewPassword", confirmNewPassword, Equals(newPassword, "Passwords do not match")).
		Result()
}

func DeleteAccount(username string) Result {
	return New().
		Field("Username", username, Required("Username field is required")).
		Result()
}

func AssignRole(email string) Result {
	return New().
		Field("Email", email, emailRules()...).
		Result()
}
