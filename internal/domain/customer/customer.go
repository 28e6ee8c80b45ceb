package customer

import (
	"fmt"
	"net/mail"
	"time"
)

// Customer represents a visited client company contact.
type Customer struct {
	id          uint
	name        string
	companyName string
	phone       *string
	email       *string
	address     *string
	notes       *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCustomer(name, companyName string, phone, email, address, notes *string) (*Customer, error) {
	if err := validateFields(name, companyName, phone, email, address, notes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Customer{
		name:        name,
		companyName: companyName,
		phone:       phone,
		email:       email,
		address:     address,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	name, companyName string,
	phone, email, address, notes *string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(companyName) == 0 {
		return nil, fmt.Errorf("company name is required")
	}

	return &Customer{
		id:          id,
		name:        name,
		companyName: companyName,
		phone:       phone,
		email:       email,
		address:     address,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) CompanyName() string  { return c.companyName }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) Email() *string       { return c.email }
func (c *Customer) Address() *string     { return c.address }
func (c *Customer) Notes() *string       { return c.notes }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateDetails replaces all mutable fields.
func (c *Customer) UpdateDetails(name, companyName string, phone, email, address, notes *string) error {
	if err := validateFields(name, companyName, phone, email, address, notes); err != nil {
		return err
	}

	c.name = name
	c.companyName = companyName
	c.phone = phone
	c.email = email
	c.address = address
	c.notes = notes
	c.updatedAt = time.Now().UTC()
	return nil
}

func validateFields(name, companyName string, phone, email, address, notes *string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(companyName) == 0 {
		return fmt.Errorf("company name is required")
	}
	if len(companyName) > 200 {
		return fmt.Errorf("company name exceeds maximum length of 200 characters")
	}
	if phone != nil && len(*phone) > 20 {
		return fmt.Errorf("phone exceeds maximum length of 20 characters")
	}
	if email != nil {
		if len(*email) > 255 {
			return fmt.Errorf("email exceeds maximum length of 255 characters")
		}
		if *email != "" {
			if _, err := mail.ParseAddress(*email); err != nil {
				return fmt.Errorf("invalid email address: %s", *email)
			}
		}
	}
	if address != nil && len(*address) > 500 {
		return fmt.Errorf("address exceeds maximum length of 500 characters")
	}
	if notes != nil && len(*notes) > 1000 {
		return fmt.Errorf("notes exceed maximum length of 1000 characters")
	}
	return nil
}
