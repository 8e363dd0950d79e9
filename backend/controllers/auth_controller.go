package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecoally/backend/config"
	"ecoally/backend/middleware"
	"ecoally/backend/models"
	"ecoally/backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	City        string `json:"city"`
	Address     string `json:"address"`

	GuardianName         string `json:"guardianName"`
	GuardianRelationship string `json:"guardianRelationship"`
	GuardianEmail        string `json:"guardianEmail"`
	GuardianPhone        string `json:"guardianPhone"`
	GuardianAddress      string `json:"guardianAddress"`
	GuardianOccupation   string `json:"guardianOccupation"`

	InstituteName string `json:"instituteName"`
	InstituteCity string `json:"instituteCity"`
	InstituteID   string `json:"instituteId"`

	AcademicRollNo string `json:"academicRollNo"`
	GradeYear      string `json:"gradeYear"`
	SectionCourse  string `json:"sectionCourse"`
	FacultyID      string `json:"facultyId"`
	AdminRole      string `json:"adminRole"`
	RolePassword   string `json:"rolePassword"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// Register creates a user plus its role record and signs the new account
// in. New accounts start every counter at zero.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if req.Email == "" && req.Phone == "" {
		return utils.BadRequest(c, "Either email or phone must be provided")
	}

	var count int64
	if req.Email != "" {
		ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
		if count > 0 {
			return utils.Conflict(c, "Email already registered")
		}
	}
	if req.Phone != "" {
		ac.DB.Model(&models.User{}).Where("phone = ?", req.Phone).Count(&count)
		if count > 0 {
			return utils.Conflict(c, "Phone number already registered")
		}
	}
	ac.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		UserType:     req.UserType,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		City:         req.City,
		Address:      req.Address,
		Active:       true,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	roleRecord, err := ac.createRoleRecord(&user, &req)
	if err != nil {
		return utils.InternalServerError(c, "Could not create role record")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.UserType, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"token":      token,
		"user":       userDto(&user),
		"roleRecord": roleRecord,
	})
}

// Login authenticates an email, phone or username identifier and returns
// the user with its role record and a fresh token. A successful login also
// appends to the login history and advances the student streak.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.findByIdentifier(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if !user.Active {
		return utils.Forbidden(c, "Account is inactive. Please contact support.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	ac.DB.Create(&models.LoginHistory{UserID: user.ID, LoginTime: time.Now()})
	ac.touchStreak(user)

	roleRecord := ac.roleRecord(user)

	token, err := utils.GenerateJWTToken(user.ID, user.UserType, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token":      token,
		"user":       userDto(user),
		"roleRecord": roleRecord,
	})
}

// Me returns the authenticated user and its role record. Used by clients
// to restore a persisted session.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	var user models.User
	if err := ac.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":       userDto(&user),
		"roleRecord": ac.roleRecord(&user),
	})
}

func (ac *AuthController) findByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	err := ac.DB.
		Where("email = ? OR phone = ? OR username = ?", identifier, identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ac *AuthController) createRoleRecord(user *models.User, req *RegisterRequest) (interface{}, error) {
	switch user.UserType {
	case models.TypeStudent:
		student := models.Student{
			UserID:               user.ID,
			InstituteName:        req.InstituteName,
			InstituteCity:        req.InstituteCity,
			InstituteID:          req.InstituteID,
			AcademicRollNo:       req.AcademicRollNo,
			GradeYear:            req.GradeYear,
			SectionCourse:        req.SectionCourse,
			GuardianName:         req.GuardianName,
			GuardianRelationship: req.GuardianRelationship,
			GuardianEmail:        req.GuardianEmail,
			GuardianPhone:        req.GuardianPhone,
			GuardianAddress:      req.GuardianAddress,
			GuardianOccupation:   req.GuardianOccupation,
			LastActive:           time.Now(),
		}
		if err := ac.DB.Create(&student).Error; err != nil {
			return nil, err
		}
		return studentDto(&student), nil
	case models.TypeTeacher:
		teacher := models.Teacher{
			UserID:        user.ID,
			InstituteName: req.InstituteName,
			InstituteCity: req.InstituteCity,
			InstituteID:   req.InstituteID,
			FacultyID:     req.FacultyID,
			RolePassword:  req.RolePassword,
		}
		if err := ac.DB.Create(&teacher).Error; err != nil {
			return nil, err
		}
		return teacherDto(&teacher), nil
	case models.TypeAdmin:
		admin := models.Admin{
			UserID:        user.ID,
			InstituteName: req.InstituteName,
			InstituteCity: req.InstituteCity,
			InstituteID:   req.InstituteID,
			AdminRole:     req.AdminRole,
			RolePassword:  req.RolePassword,
		}
		if err := ac.DB.Create(&admin).Error; err != nil {
			return nil, err
		}
		return adminDto(&admin), nil
	}
	return nil, nil
}

func (ac *AuthController) roleRecord(user *models.User) interface{} {
	switch user.UserType {
	case models.TypeStudent:
		var student models.Student
		if err := ac.DB.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
			return nil
		}
		return studentDto(&student)
	case models.TypeTeacher:
		var teacher models.Teacher
		if err := ac.DB.Where("user_id = ?", user.ID).First(&teacher).Error; err != nil {
			return nil
		}
		return teacherDto(&teacher)
	case models.TypeAdmin:
		var admin models.Admin
		if err := ac.DB.Where("user_id = ?", user.ID).First(&admin).Error; err != nil {
			return nil
		}
		return adminDto(&admin)
	}
	return nil
}

// touchStreak keeps the student streak alive. Activity within 48 hours of
// the last login extends the streak, anything older resets it to 1.
func (ac *AuthController) touchStreak(user *models.User) {
	if user.UserType != models.TypeStudent {
		return
	}

	var student models.Student
	if err := ac.DB.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
		return
	}

	if time.Since(student.LastActive) < 48*time.Hour {
		student.CurrentStreak++
	} else {
		student.CurrentStreak = 1
	}
	if student.CurrentStreak > student.LongestStreak {
		student.LongestStreak = student.CurrentStreak
	}
	student.LastActive = time.Now()
	ac.DB.Save(&student)
}

func userDto(u *models.User) fiber.Map {
	return fiber.Map{
		"id":        strconv.FormatUint(uint64(u.ID), 10),
		"email":     u.Email,
		"phone":     u.Phone,
		"username":  u.Username,
		"userType":  u.UserType,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
	}
}

func studentDto(s *models.Student) fiber.Map {
	return fiber.Map{
		"instituteName":  s.InstituteName,
		"instituteCity":  s.InstituteCity,
		"instituteId":    s.InstituteID,
		"academicRollNo": s.AcademicRollNo,
		"gradeYear":      s.GradeYear,
		"sectionCourse":  s.SectionCourse,
		"points":         s.Points,
		"coins":          s.Coins,
		"currentStreak":  s.CurrentStreak,
		"longestStreak":  s.LongestStreak,
		"streakShields":  s.StreakShields,
	}
}

func teacherDto(t *models.Teacher) fiber.Map {
	return fiber.Map{
		"instituteName": t.InstituteName,
		"instituteCity": t.InstituteCity,
		"instituteId":   t.InstituteID,
		"facultyId":     t.FacultyID,
	}
}

func adminDto(a *models.Admin) fiber.Map {
	return fiber.Map{
		"instituteName": a.InstituteName,
		"instituteCity": a.InstituteCity,
		"instituteId":   a.InstituteID,
		"adminRole":     a.AdminRole,
	}
}
