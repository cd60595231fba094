// Copyright (C) 2025 forshine-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transformer

import (
	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
)

func AssetToDTO(a models.Asset) dtos.AssetDTO {
	return dtos.AssetDTO{
		ID:               a.ID,
		HumanID:          a.HumanID,
		Title:            a.Title,
		ContentType:      a.ContentType,
		PrimaryPillar:    a.PrimaryPillar,
		SecondaryPillars: []string(a.SecondaryPillars),
		SubComponent:     a.SubComponent,
		Competence:       a.Competence,
		Behavior:         a.Behavior,
		MaturityLevel:    a.MaturityLevel,
		TargetRole:       a.TargetRole,
		Status:           a.Status,
		IPOwner:          a.IPOwner,
		IPType:           a.IPType,
		Confidentiality:  a.Confidentiality,
		FileRef:          a.FileRef,
		Version:          a.Version,
		Observations:     a.Observations,
		Completeness:     a.Completeness,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func AssetsToDTOs(assets []models.Asset) []dtos.AssetDTO {
	out := make([]dtos.AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetToDTO(a))
	}
	return out
}
