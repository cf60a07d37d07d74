package opds

// AccessMode describes how a publication's content is consumed.
type AccessMode string

const (
	AccessAuditory        AccessMode = "auditory"
	AccessChartOnVisual   AccessMode = "chartOnVisual"
	AccessChemOnVisual    AccessMode = "chemOnVisual"
	AccessColorDependent  AccessMode = "colorDependent"
	AccessDiagramOnVisual AccessMode = "diagramOnVisual"
	AccessMathOnVisual    AccessMode = "mathOnVisual"
	AccessMusicOnVisual   AccessMode = "musicOnVisual"
	AccessTactile         AccessMode = "tactile"
	AccessTextOnVisual    AccessMode = "textOnVisual"
	AccessTextual         AccessMode = "textual"
	AccessVisual          AccessMode = "visual"
)

var accessModes = map[AccessMode]bool{
	AccessAuditory: true, AccessChartOnVisual: true, AccessChemOnVisual: true,
	AccessColorDependent: true, AccessDiagramOnVisual: true,
	AccessMathOnVisual: true, AccessMusicOnVisual: true, AccessTactile: true,
	AccessTextOnVisual: true, AccessTextual: true, AccessVisual: true,
}

// AccessibilityExemption names the legal ground on which a publication is
// exempted from accessibility requirements.
type AccessibilityExemption string

const (
	ExemptionDisproportionateBurden AccessibilityExemption = "eaa-disproportionate-burden"
	ExemptionFundamentalAlteration  AccessibilityExemption = "eaa-fundamental-alteration"
	ExemptionMicroenterprise        AccessibilityExemption = "eaa-microenterprise"
)

var accessibilityExemptions = map[AccessibilityExemption]bool{
	ExemptionDisproportionateBurden: true,
	ExemptionFundamentalAlteration:  true,
	ExemptionMicroenterprise:        true,
}

// AccessibilityFeature names a content feature that improves accessibility.
type AccessibilityFeature string

const (
	FeatureAnnotations                       AccessibilityFeature = "annotations"
	FeatureAria                              AccessibilityFeature = "ARIA"
	FeatureBookmarks                         AccessibilityFeature = "bookmarks"
	FeatureIndex                             AccessibilityFeature = "index"
	FeaturePageBreakMarkers                  AccessibilityFeature = "pageBreakMarkers"
	FeaturePrintPageNumbers                  AccessibilityFeature = "printPageNumbers"
	FeaturePageNavigation                    AccessibilityFeature = "pageNavigation"
	FeatureReadingOrder                      AccessibilityFeature = "readingOrder"
	FeatureStructuralNavigation              AccessibilityFeature = "structuralNavigation"
	FeatureTableOfContents                   AccessibilityFeature = "tableOfContents"
	FeatureTaggedPDF                         AccessibilityFeature = "taggedPDF"
	FeatureAlternativeText                   AccessibilityFeature = "alternativeText"
	FeatureAudioDescription                  AccessibilityFeature = "audioDescription"
	FeatureCloseCaptions                     AccessibilityFeature = "closeCaptions"
	FeatureCaptions                          AccessibilityFeature = "captions"
	FeatureDescribedMath                     AccessibilityFeature = "describedMath"
	FeatureLongDescription                   AccessibilityFeature = "longDescription"
	FeatureOpenCaptions                      AccessibilityFeature = "openCaptions"
	FeatureSignLanguage                      AccessibilityFeature = "signLanguage"
	FeatureTranscript                        AccessibilityFeature = "transcript"
	FeatureDisplayTransformability           AccessibilityFeature = "displayTransformability"
	FeatureSynchronizedAudioText             AccessibilityFeature = "synchronizedAudioText"
	FeatureTimingControl                     AccessibilityFeature = "timingControl"
	FeatureUnlocked                          AccessibilityFeature = "unlocked"
	FeatureChemML                            AccessibilityFeature = "ChemML"
	FeatureLatex                             AccessibilityFeature = "latex"
	FeatureLatexChemistry                    AccessibilityFeature = "latex-chemistry"
	FeatureMathML                            AccessibilityFeature = "MathML"
	FeatureMathMLChemistry                   AccessibilityFeature = "MathML-chemistry"
	FeatureTTSMarkup                         AccessibilityFeature = "ttsMarkup"
	FeatureHighContrastAudio                 AccessibilityFeature = "highContrastAudio"
	FeatureHighContrastDisplay               AccessibilityFeature = "highContrastDisplay"
	FeatureLargePrint                        AccessibilityFeature = "largePrint"
	FeatureBraille                           AccessibilityFeature = "braille"
	FeatureTactileGraphic                    AccessibilityFeature = "tactileGraphic"
	FeatureTactileObject                     AccessibilityFeature = "tactileObject"
	FeatureFullRubyAnnotations               AccessibilityFeature = "fullRubyAnnotations"
	FeatureHorizontalWriting                 AccessibilityFeature = "horizontalWriting"
	FeatureRubyAnnotations                   AccessibilityFeature = "rubyAnnotations"
	FeatureVerticalWriting                   AccessibilityFeature = "verticalWriting"
	FeatureWithAdditionalWordSegmentation    AccessibilityFeature = "withAdditionalWordSegmentation"
	FeatureWithoutAdditionalWordSegmentation AccessibilityFeature = "withoutAdditionalWordSegmentation"
	FeatureNone                              AccessibilityFeature = "none"
	FeatureUnknown                           AccessibilityFeature = "unknown"
)

var accessibilityFeatures = map[AccessibilityFeature]bool{
	FeatureAnnotations: true, FeatureAria: true, FeatureBookmarks: true,
	FeatureIndex: true, FeaturePageBreakMarkers: true,
	FeaturePrintPageNumbers: true, FeaturePageNavigation: true,
	FeatureReadingOrder: true, FeatureStructuralNavigation: true,
	FeatureTableOfContents: true, FeatureTaggedPDF: true,
	FeatureAlternativeText: true, FeatureAudioDescription: true,
	FeatureCloseCaptions: true, FeatureCaptions: true,
	FeatureDescribedMath: true, FeatureLongDescription: true,
	FeatureOpenCaptions: true, FeatureSignLanguage: true,
	FeatureTranscript: true, FeatureDisplayTransformability: true,
	FeatureSynchronizedAudioText: true, FeatureTimingControl: true,
	FeatureUnlocked: true, FeatureChemML: true, FeatureLatex: true,
	FeatureLatexChemistry: true, FeatureMathML: true,
	FeatureMathMLChemistry: true, FeatureTTSMarkup: true,
	FeatureHighContrastAudio: true, FeatureHighContrastDisplay: true,
	FeatureLargePrint: true, FeatureBraille: true,
	FeatureTactileGraphic: true, FeatureTactileObject: true,
	FeatureFullRubyAnnotations: true, FeatureHorizontalWriting: true,
	FeatureRubyAnnotations: true, FeatureVerticalWriting: true,
	FeatureWithAdditionalWordSegmentation:    true,
	FeatureWithoutAdditionalWordSegmentation: true,
	FeatureNone:                              true,
	FeatureUnknown:                           true,
}

// AccessibilityHazard names a potential hazard the content presents.
type AccessibilityHazard string

const (
	HazardFlashing                AccessibilityHazard = "flashing"
	HazardMotionSimulation        AccessibilityHazard = "motionSimulation"
	HazardSound                   AccessibilityHazard = "sound"
	HazardNone                    AccessibilityHazard = "none"
	HazardNoFlashing              AccessibilityHazard = "noFlashingHazard"
	HazardNoMotionSimulation      AccessibilityHazard = "noMotionSimulationHazard"
	HazardNoSound                 AccessibilityHazard = "noSoundHazard"
	HazardUnknown                 AccessibilityHazard = "unknown"
	HazardUnknownFlashing         AccessibilityHazard = "unknownFlashingHazard"
	HazardUnknownMotionSimulation AccessibilityHazard = "unknownMotionSimulationHazard"
	HazardUnknownSound            AccessibilityHazard = "unknownSoundHazard"
)

var accessibilityHazards = map[AccessibilityHazard]bool{
	HazardFlashing: true, HazardMotionSimulation: true, HazardSound: true,
	HazardNone: true, HazardNoFlashing: true, HazardNoMotionSimulation: true,
	HazardNoSound: true, HazardUnknown: true, HazardUnknownFlashing: true,
	HazardUnknownMotionSimulation: true, HazardUnknownSound: true,
}

// AccessibilityCertification records who certified the publication's
// accessibility and on what basis.
type AccessibilityCertification struct {
	CertifiedBy string
	Credential  string
	Report      string
}

// AccessibilityMeta is the accessibility metadata of a publication.
type AccessibilityMeta struct {
	// ConformsTo lists accessibility profiles the publication conforms to.
	ConformsTo []string

	// Exemption names a legal exemption from accessibility requirements.
	Exemption AccessibilityExemption

	AccessMode []AccessMode
	Feature    []AccessibilityFeature
	Hazard     []AccessibilityHazard

	Certification *AccessibilityCertification

	// Summary is a human-readable accessibility summary.
	Summary string
}
