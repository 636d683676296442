package services

import (
	"fmt"
	"strings"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

var (
	validAgeRanges = map[entities.AgeRange]bool{
		entities.Age18To25: true, entities.Age26To35: true, entities.Age36To45: true,
		entities.Age46To55: true, entities.Age56To65: true, entities.Age65Plus: true,
	}
	validFamilyStatuses = map[entities.FamilyStatus]bool{
		entities.FamilySingle: true, entities.FamilyCouple: true, entities.FamilyYoung: true,
		entities.FamilyTeen: true, entities.FamilyEmptyNest: true,
	}
	validOccupations = map[entities.Occupation]bool{
		entities.OccupationProfessional: true, entities.OccupationExecutive: true,
		entities.OccupationEntrepreneur: true, entities.OccupationStudent: true,
		entities.OccupationRetired: true, entities.OccupationOther: true,
	}
	validIncomeRanges = map[entities.IncomeRange]bool{
		entities.IncomeUnder50k: true, entities.Income50to75k: true, entities.Income75to100k: true,
		entities.Income100to150k: true, entities.Income150to250k: true, entities.Income250kPlus: true,
	}
	validAreaDensities = map[entities.AreaDensity]bool{
		entities.AreaUrban: true, entities.AreaSuburban: true, entities.AreaRural: true, entities.AreaMixed: true,
	}
	validEntertaining = map[entities.EntertainingFrequency]bool{
		entities.EntertainNever: true, entities.EntertainRarely: true, entities.EntertainSometimes: true,
		entities.EntertainOften: true, entities.EntertainFrequently: true,
	}
	validHoldPeriods = map[entities.HoldPeriod]bool{
		entities.Hold1To2Years: true, entities.Hold3To5Years: true,
		entities.Hold5To10Years: true, entities.Hold10Plus: true,
	}
	validRiskTolerances = map[entities.RiskTolerance]bool{
		entities.RiskConservative: true, entities.RiskModerate: true, entities.RiskAggressive: true,
	}
	validPropertyTypes = map[entities.PropertyType]bool{
		entities.TypeApartment: true, entities.TypeHouse: true, entities.TypeTownhouse: true,
		entities.TypePenthouse: true, entities.TypeDuplex: true,
	}
	validStages = map[entities.DevelopmentStage]bool{
		entities.StageCompleted: true, entities.StageUnderConstruction: true, entities.StagePlanning: true,
	}
	validArchStyles = map[entities.ArchitecturalStyle]bool{
		entities.ArchModern: true, entities.ArchTraditional: true, entities.ArchContemporary: true,
		entities.ArchVictorian: true, entities.ArchGeorgian: true, entities.ArchMinimalist: true,
	}
	validInteriorStyles = map[entities.InteriorStyle]bool{
		entities.InteriorModern: true, entities.InteriorTraditional: true, entities.InteriorScandinavian: true,
		entities.InteriorIndustrial: true, entities.InteriorBohemian: true, entities.InteriorLuxury: true,
	}
	validOutdoorSpaces = map[entities.OutdoorSpace]bool{
		entities.OutdoorNone: true, entities.OutdoorBalcony: true, entities.OutdoorGarden: true,
		entities.OutdoorLargeGarden: true, entities.OutdoorRooftop: true,
	}
	validParking = map[entities.ParkingType]bool{
		entities.ParkingNone: true, entities.ParkingStreet: true, entities.ParkingPrivate: true,
		entities.ParkingGarage: true, entities.ParkingMultiple: true,
	}
	validEnergyRatings = map[entities.EnergyRating]bool{
		entities.EnergyA1: true, entities.EnergyA2: true, entities.EnergyA3: true,
		entities.EnergyB1: true, entities.EnergyB2: true, entities.EnergyB3: true,
		entities.EnergyC1: true, entities.EnergyC2: true, entities.EnergyC3: true,
		entities.EnergyD1: true, entities.EnergyD2: true,
	}
	validNoiseLevels = map[entities.NoiseLevel]bool{
		entities.NoiseQuiet: true, entities.NoiseModerate: true, entities.NoiseBusy: true,
	}
	validTrends = map[entities.MarketTrend]bool{
		entities.TrendRising: true, entities.TrendStable: true, entities.TrendDeclining: true,
	}
	validTiers = map[entities.CustomizationTier]bool{
		entities.TierBasic: true, entities.TierStandard: true, entities.TierPremium: true, entities.TierLuxury: true,
	}
)

// ValidationService normalizes and validates preference profiles and
// property records before they reach the scoring path. Every violated
// constraint is reported, not just the first.
type ValidationService struct{}

// NewValidationService creates a new validation service.
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateProfile validates a preference profile and returns a normalized
// copy: all 0-10 importance and weight fields are clamped to that range.
func (v *ValidationService) ValidateProfile(profile entities.UserPreferenceProfile) (entities.UserPreferenceProfile, error) {
	var c apperrors.ViolationCollector

	if strings.TrimSpace(profile.UserID) == "" {
		c.Add("userId", "", "is required")
	}

	d := profile.Demographics
	if !validAgeRanges[d.AgeRange] {
		c.Add("demographics.ageRange", string(d.AgeRange), "is not a valid age range")
	}
	if !validFamilyStatuses[d.FamilyStatus] {
		c.Add("demographics.familyStatus", string(d.FamilyStatus), "is not a valid family status")
	}
	if !validOccupations[d.Occupation] {
		c.Add("demographics.occupation", string(d.Occupation), "is not a valid occupation")
	}
	if !validIncomeRanges[d.IncomeRange] {
		c.Add("demographics.incomeRange", string(d.IncomeRange), "is not a valid income range")
	}

	loc := &profile.LocationPreferences
	if loc.MaxCommuteTime < 0 {
		c.Addf("locationPreferences.maxCommuteTime", fmt.Sprint(loc.MaxCommuteTime), "must not be negative")
	}
	if !validAreaDensities[loc.UrbanVsRural] {
		c.Add("locationPreferences.urbanVsRural", string(loc.UrbanVsRural), "is not a valid area preference")
	}
	loc.ProximityFactors = clampWeights(loc.ProximityFactors)

	pp := &profile.PropertyPreferences
	if len(pp.PropertyTypes) == 0 {
		c.Add("propertyPreferences.propertyTypes", "", "at least one property type is required")
	}
	for _, t := range pp.PropertyTypes {
		if !validPropertyTypes[t] {
			c.Add("propertyPreferences.propertyTypes", string(t), "is not a valid property type")
		}
	}

	size := pp.SizePreferences
	if size.MinBedrooms < 0 || size.MinBedrooms > 10 {
		c.Addf("propertyPreferences.sizePreferences.minBedrooms", fmt.Sprint(size.MinBedrooms), "must be between 0 and 10")
	}
	if size.MaxBedrooms < 0 || size.MaxBedrooms > 10 {
		c.Addf("propertyPreferences.sizePreferences.maxBedrooms", fmt.Sprint(size.MaxBedrooms), "must be between 0 and 10")
	}
	if size.MinBedrooms > size.MaxBedrooms {
		c.Add("propertyPreferences.sizePreferences", "", "minBedrooms must not exceed maxBedrooms")
	}
	if size.MinBathrooms < 0 || size.MinBathrooms > 10 {
		c.Addf("propertyPreferences.sizePreferences.minBathrooms", fmt.Sprint(size.MinBathrooms), "must be between 0 and 10")
	}
	if size.MinSquareMeters < 0 {
		c.Add("propertyPreferences.sizePreferences.minSquareMeters", fmt.Sprint(size.MinSquareMeters), "must not be negative")
	}

	budget := pp.BudgetConstraints
	if budget.MinPrice < 0 {
		c.Add("propertyPreferences.budgetConstraints.minPrice", fmt.Sprint(budget.MinPrice), "must not be negative")
	}
	if budget.MaxPrice <= 0 {
		c.Add("propertyPreferences.budgetConstraints.maxPrice", fmt.Sprint(budget.MaxPrice), "must be positive")
	}
	if budget.MinPrice > budget.MaxPrice {
		c.Add("propertyPreferences.budgetConstraints", "", "minPrice must not exceed maxPrice")
	}
	if budget.FlexibilityPercentage < 0 || budget.FlexibilityPercentage > 50 {
		c.Addf("propertyPreferences.budgetConstraints.flexibilityPercentage", fmt.Sprint(budget.FlexibilityPercentage), "must be between 0 and 50")
	}

	style := pp.StylePreferences
	for _, s := range style.ArchitecturalStyles {
		if !validArchStyles[s] {
			c.Add("propertyPreferences.stylePreferences.architecturalStyles", string(s), "is not a valid architectural style")
		}
	}
	for _, s := range style.InteriorStyles {
		if !validInteriorStyles[s] {
			c.Add("propertyPreferences.stylePreferences.interiorStyles", string(s), "is not a valid interior style")
		}
	}
	if !validOutdoorSpaces[style.OutdoorSpace] {
		c.Add("propertyPreferences.stylePreferences.outdoorSpace", string(style.OutdoorSpace), "is not a valid outdoor space")
	}
	if !validParking[style.Parking] {
		c.Add("propertyPreferences.stylePreferences.parking", string(style.Parking), "is not a valid parking type")
	}

	lf := &profile.LifestyleFactors
	if !validEntertaining[lf.EntertainingFrequency] {
		c.Add("lifestyleFactors.entertainingFrequency", string(lf.EntertainingFrequency), "is not a valid entertaining frequency")
	}
	lf.FitnessImportance = clamp10(lf.FitnessImportance)
	lf.PrivacyImportance = clamp10(lf.PrivacyImportance)
	lf.TechnologyImportance = clamp10(lf.TechnologyImportance)
	lf.SustainabilityImportance = clamp10(lf.SustainabilityImportance)

	if ig := profile.InvestmentGoals; ig != nil {
		if !validHoldPeriods[ig.ExpectedHoldPeriod] {
			c.Add("investmentGoals.expectedHoldPeriod", string(ig.ExpectedHoldPeriod), "is not a valid hold period")
		}
		if !validRiskTolerances[ig.RiskTolerance] {
			c.Add("investmentGoals.riskTolerance", string(ig.RiskTolerance), "is not a valid risk tolerance")
		}
	}

	if err := c.Err("user preference profile"); err != nil {
		return entities.UserPreferenceProfile{}, err
	}
	return profile, nil
}

// ValidateProperty validates a property record and returns a normalized
// copy.
func (v *ValidationService) ValidateProperty(property entities.PropertyRecord) (entities.PropertyRecord, error) {
	var c apperrors.ViolationCollector

	if strings.TrimSpace(property.PropertyID) == "" {
		c.Add("propertyId", "", "is required")
	}

	bi := property.BasicInfo
	if strings.TrimSpace(bi.Address) == "" {
		c.Add("basicInfo.address", "", "is required")
	}
	if strings.TrimSpace(bi.Region) == "" {
		c.Add("basicInfo.region", "", "is required")
	}
	if !validPropertyTypes[bi.PropertyType] {
		c.Add("basicInfo.propertyType", string(bi.PropertyType), "is not a valid property type")
	}
	if bi.Bedrooms < 0 {
		c.Add("basicInfo.bedrooms", fmt.Sprint(bi.Bedrooms), "must not be negative")
	}
	if bi.Bathrooms < 0 {
		c.Add("basicInfo.bathrooms", fmt.Sprint(bi.Bathrooms), "must not be negative")
	}
	if bi.SquareMeters <= 0 {
		c.Add("basicInfo.squareMeters", fmt.Sprint(bi.SquareMeters), "must be positive")
	}
	if !validStages[bi.DevelopmentStage] {
		c.Add("basicInfo.developmentStage", string(bi.DevelopmentStage), "is not a valid development stage")
	}

	if property.Pricing.ListPrice <= 0 {
		c.Add("pricing.listPrice", fmt.Sprint(property.Pricing.ListPrice), "must be positive")
	}
	if property.Pricing.EstimatedMonthlyPayment < 0 {
		c.Add("pricing.estimatedMonthlyPayment", fmt.Sprint(property.Pricing.EstimatedMonthlyPayment), "must not be negative")
	}

	f := property.Features
	if !validArchStyles[f.ArchitecturalStyle] {
		c.Add("features.architecturalStyle", string(f.ArchitecturalStyle), "is not a valid architectural style")
	}
	if !validInteriorStyles[f.InteriorStyle] {
		c.Add("features.interiorStyle", string(f.InteriorStyle), "is not a valid interior style")
	}
	if !validOutdoorSpaces[f.OutdoorSpace] {
		c.Add("features.outdoorSpace", string(f.OutdoorSpace), "is not a valid outdoor space")
	}
	if !validParking[f.Parking] {
		c.Add("features.parking", string(f.Parking), "is not a valid parking type")
	}
	if !validEnergyRatings[f.EnergyRating] {
		c.Add("features.energyRating", string(f.EnergyRating), "is not a valid energy rating")
	}

	l := &property.Location
	if l.WalkScore < 0 || l.WalkScore > 100 {
		c.Addf("location.walkScore", fmt.Sprint(l.WalkScore), "must be between 0 and 100")
	}
	if l.TransitScore < 0 || l.TransitScore > 100 {
		c.Addf("location.transitScore", fmt.Sprint(l.TransitScore), "must be between 0 and 100")
	}
	if !validNoiseLevels[l.NoiseLevel] {
		c.Add("location.noiseLevel", string(l.NoiseLevel), "is not a valid noise level")
	}
	if l.SafetyRating < 0 || l.SafetyRating > 10 {
		c.Addf("location.safetyRating", fmt.Sprint(l.SafetyRating), "must be between 0 and 10")
	}
	l.ProximityScores = clampScores(l.ProximityScores)

	md := property.MarketData
	if md.AverageAreaPrice < 0 {
		c.Add("marketData.averageAreaPrice", fmt.Sprint(md.AverageAreaPrice), "must not be negative")
	}
	if !validTrends[md.MarketTrend] {
		c.Add("marketData.marketTrend", string(md.MarketTrend), "is not a valid market trend")
	}
	if md.TimeOnMarket < 0 {
		c.Add("marketData.timeOnMarket", fmt.Sprint(md.TimeOnMarket), "must not be negative")
	}
	if md.RentalYield < 0 {
		c.Add("marketData.rentalYield", fmt.Sprint(md.RentalYield), "must not be negative")
	}

	if property.Customization.Available && !validTiers[property.Customization.CustomizationLevel] {
		c.Add("customization.customizationLevel", string(property.Customization.CustomizationLevel), "is not a valid customization tier")
	}

	if err := c.Err("property record"); err != nil {
		return entities.PropertyRecord{}, err
	}
	return property, nil
}

func clamp10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func clampWeights(w entities.ProximityWeights) entities.ProximityWeights {
	w.PublicTransport = clamp10(w.PublicTransport)
	w.Schools = clamp10(w.Schools)
	w.Shopping = clamp10(w.Shopping)
	w.Healthcare = clamp10(w.Healthcare)
	w.Recreation = clamp10(w.Recreation)
	w.Nightlife = clamp10(w.Nightlife)
	w.Nature = clamp10(w.Nature)
	return w
}

func clampScores(s entities.ProximityScores) entities.ProximityScores {
	s.PublicTransport = clamp10(s.PublicTransport)
	s.Schools = clamp10(s.Schools)
	s.Shopping = clamp10(s.Shopping)
	s.Healthcare = clamp10(s.Healthcare)
	s.Recreation = clamp10(s.Recreation)
	s.Nightlife = clamp10(s.Nightlife)
	s.Nature = clamp10(s.Nature)
	return s
}
