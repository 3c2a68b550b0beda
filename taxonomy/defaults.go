// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package taxonomy

// mustAdd panics on error; used only for the static default tables below,
// where duplicate or empty entries are programmer mistakes.
func mustAdd(t *Taxonomy, name string, keywords []string) {
	if err := t.Add(name, keywords); err != nil {
		panic(err)
	}
}

// DefaultCategories returns the built-in French occupational health and
// safety category taxonomy. Order matters: it is the tie-break priority
// for equal classification scores.
func DefaultCategories() *Taxonomy {
	t := New()
	mustAdd(t, "Prévention", []string{
		"prévention", "préventif", "prévenir", "éviter", "anticiper", "mesure",
		"protection", "sécuriser", "précaution", "sécuritaire",
	})
	mustAdd(t, "Réglementation", []string{
		"loi", "règlement", "norme", "législation", "code", "obligation",
		"légal", "juridique", "décret", "arrêté", "directive", "conformité",
		"réglementaire", "cnesst", "lsst",
	})
	mustAdd(t, "Formation", []string{
		"formation", "cours", "apprentissage", "éducation", "compétence",
		"qualification", "sensibilisation", "instruction", "atelier",
		"certification", "accréditation", "habilitation",
	})
	mustAdd(t, "Équipements de protection", []string{
		"équipement", "epi", "protection", "casque", "gant", "harnais",
		"masque", "lunette", "chaussure", "protection individuelle",
		"protection collective", "respirateur", "système d'arrêt de chute",
	})
	mustAdd(t, "Risques spécifiques", []string{
		"risque", "danger", "chute", "électrique", "chimique", "incendie",
		"explosion", "ergonomique", "biologique", "hauteur", "confiné",
		"excavation", "rayonnement", "bruit", "vibration", "psychosocial",
		"amiante", "silice",
	})
	mustAdd(t, "Risques chimiques", []string{
		"produit chimique", "simdut", "fds", "étiquette", "toxique",
		"corrosif", "inflammable", "cancérogène", "mutagène", "reprotoxique",
		"allergène", "sensibilisant",
	})
	mustAdd(t, "Risques physiques", []string{
		"bruit", "vibration", "radiation", "chaleur", "froid", "électricité",
		"rayonnement", "pression", "ventilation", "éclairage",
	})
	mustAdd(t, "Risques ergonomiques", []string{
		"ergonomie", "posture", "mouvement répétitif", "manutention",
		"charge", "tms", "trouble musculosquelettique", "biomécanique",
		"poste de travail",
	})
	mustAdd(t, "Risques psychosociaux", []string{
		"stress", "harcèlement", "violence", "santé mentale", "épuisement",
		"burnout", "surcharge", "rps", "organisation du travail",
	})
	mustAdd(t, "Bonnes pratiques", []string{
		"pratique", "méthode", "procédure", "recommandation", "guide",
		"conseil", "fiche technique", "protocole", "instruction",
		"méthode de travail", "permis de travail",
	})
	mustAdd(t, "Normes et standards", []string{
		"norme", "standard", "iso", "certification", "référentiel",
		"qualité", "csa", "ansi", "homologation", "accréditation",
	})
	mustAdd(t, "Études et statistiques", []string{
		"étude", "statistique", "donnée", "analyse", "recherche", "rapport",
		"enquête", "indicateur", "fréquence", "gravité", "incidence",
		"prévalence",
	})
	mustAdd(t, "Gestion SST", []string{
		"système de gestion", "politique", "planification", "audit", "revue",
		"amélioration continue", "sgsst", "comité", "représentant",
		"responsable", "programme",
	})
	mustAdd(t, "Accidents et incidents", []string{
		"accident", "incident", "quasi-accident", "lésion", "blessure",
		"enquête", "arbre des causes", "déclaration", "signalement",
		"premiers secours",
	})
	return t
}

// DefaultSectors returns the built-in industry-sector taxonomy used by
// the presence-based sector detector.
func DefaultSectors() *Taxonomy {
	t := New()
	mustAdd(t, "Construction", []string{
		"construction", "bâtiment", "chantier", "btp", "génie civil",
		"entrepreneur", "gros œuvre",
	})
	mustAdd(t, "Manufacturier", []string{
		"usine", "fabrication", "manufacture", "production", "industriel",
		"assemblage",
	})
	mustAdd(t, "Minier", []string{
		"mine", "extraction", "forage", "minerai", "gisement", "carrière",
	})
	mustAdd(t, "Forestier", []string{
		"forêt", "forestier", "sylviculture", "bois", "abattage", "scierie",
	})
	mustAdd(t, "Transport", []string{
		"transport", "logistique", "routier", "ferroviaire", "maritime",
		"aérien", "manutention",
	})
	mustAdd(t, "Santé", []string{
		"santé", "hôpital", "clinique", "soins", "médical", "infirmier",
		"chsld",
	})
	mustAdd(t, "Agriculture", []string{
		"agriculture", "agricole", "ferme", "culture", "élevage",
		"agroalimentaire",
	})
	mustAdd(t, "Énergie", []string{
		"énergie", "électricité", "hydro", "nucléaire", "pétrole", "gaz",
		"renouvelable",
	})
	mustAdd(t, "Services", []string{
		"service", "commerce", "bureau", "détail", "restauration",
		"hôtellerie",
	})
	return t
}

// DefaultBoostTerms returns the domain terms that raise a keyword
// candidate's count during extraction.
func DefaultBoostTerms() []string {
	return []string{
		"prévention", "sécurité", "risque", "danger", "protection",
		"formation", "accident", "incident", "travailleur", "employeur",
		"équipement", "epi", "cnesst", "chantier", "construction",
		"ergonomie", "exposition", "chimique", "biologique", "physique",
		"psychosocial", "règlement", "norme", "standard", "programme",
		"comité", "inspection", "audit", "enquête",
	}
}

// DefaultImportanceTerms returns the domain terms scored by the
// extractive summarizer when ranking sentences.
func DefaultImportanceTerms() []string {
	return []string{
		"sécurité", "santé", "travail", "prévention", "risque", "danger",
		"protection", "mesure", "obligation", "employeur", "travailleur",
		"règlement", "norme", "accident", "formation", "équipement",
	}
}
