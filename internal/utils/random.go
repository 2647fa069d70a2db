package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/yamato-estate/attendance/backend/internal/domain"
	"github.com/yamato-estate/attendance/backend/internal/shiftreq"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤",
	"吉田", "山田", "佐々木", "山口", "松本", "井上", "木村", "林", "斎藤", "清水",
}
var commonGivenNames = []string{
	"太郎", "花子", "一郎", "美咲", "健太", "彩", "大輔", "真由美", "翔太", "恵",
	"直樹", "裕子", "拓也", "陽子", "亮", "千尋", "誠", "優子", "悟", "里奈",
}

func GenerateRandomFullName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	return surname + " " + given
}

var digits = "0123456789"

// GenerateUsernameFromName romanizes the kanji via pinyin readings and tacks
// on a few digits. Fixture usernames only need to be ASCII and unique-ish,
// not faithful readings.
func GenerateUsernameFromName(fullName string) string {
	readings := pinyin.LazyConvert(fullName, nil)
	username := ""

	for _, reading := range readings {
		length := rand.Intn(len(reading)) + 1
		username += reading[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleManager,
	domain.RoleStaff,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

var positions = []string{"front desk", "property viewing guide", "flyer distribution", "office assistance", "site cleanup"}

func GenerateRandomEmployee(emailDomainName string) *domain.Employee {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromName(fullName)

	phone := "0"
	for i := 0; i < 10; i++ {
		phone += string(digits[rand.Intn(len(digits))])
	}

	return &domain.Employee{
		Name:     fullName,
		Email:    username + "@" + emailDomainName,
		Phone:    phone,
		Position: positions[rand.Intn(len(positions))],
	}
}

// GenerateRandomAvailabilityEntries builds one window per day for n
// consecutive days starting tomorrow. One window per date can never
// overlap, so the batch always validates.
func GenerateRandomAvailabilityEntries(n int) []shiftreq.Entry {
	entries := make([]shiftreq.Entry, n)
	for i := range entries {
		date := time.Now().AddDate(0, 0, i+1).Format("2006-01-02")
		startHour := rand.Intn(5) + 8   // 08:00 - 12:00
		duration := rand.Intn(5) + 2    // 2 - 6 hours
		entries[i] = shiftreq.Entry{
			Date:  date,
			Start: fmt.Sprintf("%02d:00", startHour),
			End:   fmt.Sprintf("%02d:00", startHour+duration),
		}
	}
	return entries
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
