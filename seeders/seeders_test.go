package seeders_test

import (
	"testing"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/migrations"
	"github.com/Kariqs/klenhub-api/models"
	"github.com/Kariqs/klenhub-api/seeders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SeederTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *SeederTestSuite) SetupTest() {
	db, err := initializers.OpenDB("sqlite", ":memory:")
	s.Require().NoError(err)
	s.Require().NoError(migrations.Up(db))
	s.db = db
}

func (s *SeederTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *SeederTestSuite) counts() (products, sizes, images int64) {
	s.Require().NoError(s.db.Model(&models.Product{}).Count(&products).Error)
	s.Require().NoError(s.db.Model(&models.ProductSize{}).Count(&sizes).Error)
	s.Require().NoError(s.db.Model(&models.ProductImage{}).Count(&images).Error)
	return products, sizes, images
}

func (s *SeederTestSuite) TestUpInsertsDemoData() {
	s.Require().NoError(seeders.Up(s.db))

	products, sizes, images := s.counts()
	s.Equal(int64(3), products)
	s.Equal(int64(12), sizes)
	s.Equal(int64(4), images)

	var mainImages int64
	s.Require().NoError(s.db.Model(&models.ProductImage{}).Where("is_main = ?", true).Count(&mainImages).Error)
	s.Equal(int64(3), mainImages)
}

func (s *SeederTestSuite) TestEveryProductHasFourSizes() {
	s.Require().NoError(seeders.Up(s.db))

	var products []models.Product
	s.Require().NoError(s.db.Preload("Sizes").Preload("Images").Order("id").Find(&products).Error)
	s.Require().Len(products, 3)

	for _, p := range products {
		labels := make([]string, 0, len(p.Sizes))
		for _, size := range p.Sizes {
			labels = append(labels, size.Size)
		}
		s.ElementsMatch([]string{"S", "M", "L", "XL"}, labels, p.Name)
		s.NotEmpty(p.Images, p.Name)
	}
	s.Len(products[0].Images, 2)
	s.Equal("29.99", products[0].Price.StringFixed(2))
}

func (s *SeederTestSuite) TestDownEmptiesTables() {
	s.Require().NoError(seeders.Up(s.db))
	s.Require().NoError(seeders.Down(s.db))

	products, sizes, images := s.counts()
	s.Zero(products)
	s.Zero(sizes)
	s.Zero(images)
}

func (s *SeederTestSuite) TestDownOnEmptyTables() {
	s.Require().NoError(seeders.Down(s.db))

	products, _, _ := s.counts()
	s.Zero(products)
}

func (s *SeederTestSuite) TestSeedAgainAfterDown() {
	s.Require().NoError(seeders.Up(s.db))
	s.Require().NoError(seeders.Down(s.db))
	s.Require().NoError(seeders.Up(s.db))

	products, sizes, images := s.counts()
	s.Equal(int64(3), products)
	s.Equal(int64(12), sizes)
	s.Equal(int64(4), images)
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func TestUpFailsWithoutSchema(t *testing.T) {
	db, err := initializers.OpenDB("sqlite", ":memory:")
	require.NoError(t, err)

	err = seeders.Up(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed demo_products")
}
